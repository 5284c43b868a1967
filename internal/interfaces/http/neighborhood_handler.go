package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/application/usecase"
)

var neighborhoodMessages = messages{
	list:    "Erro ao buscar bairros.",
	get:     "Erro ao buscar bairro.",
	create:  "Erro ao criar bairro.",
	update:  "Erro ao atualizar bairro.",
	delete:  "Erro ao deletar bairro.",
	created: "Bairro criado com sucesso.",
	updated: "Bairro atualizado com sucesso.",
	deleted: "Bairro deletado com sucesso.",
}

// NeighborhoodHandler maneja /bairros.
type NeighborhoodHandler struct {
	uc *usecase.NeighborhoodUseCase
}

func NewNeighborhoodHandler(uc *usecase.NeighborhoodUseCase) *NeighborhoodHandler {
	return &NeighborhoodHandler{uc: uc}
}

func (h *NeighborhoodHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err, neighborhoodMessages.list)
	}
	return c.JSON(out)
}

func (h *NeighborhoodHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, neighborhoodMessages.get)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, neighborhoodMessages.get)
	}
	return c.JSON(out)
}

func (h *NeighborhoodHandler) Create(c *fiber.Ctx) error {
	var in dto.NeighborhoodRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err, neighborhoodMessages.create)
	}
	id, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, neighborhoodMessages.create)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id, Message: neighborhoodMessages.created})
}

func (h *NeighborhoodHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, neighborhoodMessages.update)
	}
	var in dto.NeighborhoodRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err, neighborhoodMessages.update)
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return respondError(c, err, neighborhoodMessages.update)
	}
	return c.JSON(dto.MessageResponse{Message: neighborhoodMessages.updated})
}

func (h *NeighborhoodHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, neighborhoodMessages.delete)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, neighborhoodMessages.delete)
	}
	return c.JSON(dto.MessageResponse{Message: neighborhoodMessages.deleted})
}
