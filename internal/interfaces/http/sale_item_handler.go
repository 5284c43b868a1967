package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/application/usecase"
)

var saleItemMessages = messages{
	list:    "Erro ao buscar itensvenda.",
	get:     "Erro ao buscar itemvenda.",
	create:  "Erro ao criar itemvenda.",
	update:  "Erro ao atualizar itemvenda.",
	delete:  "Erro ao deletar itemvenda.",
	created: "ItemVenda criado com sucesso.",
	updated: "ItemVenda atualizado com sucesso.",
	deleted: "ItemVenda deletado com sucesso.",
}

// SaleItemHandler maneja /itensvenda.
type SaleItemHandler struct {
	uc *usecase.SaleItemUseCase
}

func NewSaleItemHandler(uc *usecase.SaleItemUseCase) *SaleItemHandler {
	return &SaleItemHandler{uc: uc}
}

func (h *SaleItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err, saleItemMessages.list)
	}
	return c.JSON(out)
}

func (h *SaleItemHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, saleItemMessages.get)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, saleItemMessages.get)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agregar item a una venda existente
// @Tags         itensvenda
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleItemRequest  true  "Item"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /itensvenda [post]
func (h *SaleItemHandler) Create(c *fiber.Ctx) error {
	var in dto.SaleItemRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err, saleItemMessages.create)
	}
	id, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, saleItemMessages.create)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id, Message: saleItemMessages.created})
}

func (h *SaleItemHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, saleItemMessages.update)
	}
	var in dto.SaleItemRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err, saleItemMessages.update)
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return respondError(c, err, saleItemMessages.update)
	}
	return c.JSON(dto.MessageResponse{Message: saleItemMessages.updated})
}

func (h *SaleItemHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, saleItemMessages.delete)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, saleItemMessages.delete)
	}
	return c.JSON(dto.MessageResponse{Message: saleItemMessages.deleted})
}
