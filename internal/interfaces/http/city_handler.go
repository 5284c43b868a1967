package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/application/usecase"
)

var cityMessages = messages{
	list:    "Erro ao buscar cidades.",
	get:     "Erro ao buscar cidade.",
	create:  "Erro ao criar cidade.",
	update:  "Erro ao atualizar cidade.",
	delete:  "Erro ao deletar cidade.",
	created: "Cidade criada com sucesso.",
	updated: "Cidade atualizada com sucesso.",
	deleted: "Cidade deletada com sucesso.",
}

// CityHandler maneja las peticiones HTTP de /cidades.
type CityHandler struct {
	uc *usecase.CityUseCase
}

// NewCityHandler construye el handler.
func NewCityHandler(uc *usecase.CityUseCase) *CityHandler {
	return &CityHandler{uc: uc}
}

// List godoc
// @Summary      Listar cidades
// @Tags         cidades
// @Produce      json
// @Success      200  {array}   dto.CityResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /cidades [get]
func (h *CityHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err, cityMessages.list)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cidade por ID
// @Tags         cidades
// @Produce      json
// @Param        id   path  int  true  "ID da cidade"
// @Success      200  {object}  dto.CityResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /cidades/{id} [get]
func (h *CityHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, cityMessages.get)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, cityMessages.get)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear cidade
// @Tags         cidades
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CityRequest  true  "Datos de la cidade"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /cidades [post]
func (h *CityHandler) Create(c *fiber.Ctx) error {
	var in dto.CityRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err, cityMessages.create)
	}
	id, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, cityMessages.create)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id, Message: cityMessages.created})
}

// Update godoc
// @Summary      Actualizar cidade
// @Tags         cidades
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID da cidade"
// @Param        body  body  dto.CityRequest  true  "Datos de la cidade"
// @Success      200   {object}  dto.MessageResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /cidades/{id} [put]
func (h *CityHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, cityMessages.update)
	}
	var in dto.CityRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err, cityMessages.update)
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return respondError(c, err, cityMessages.update)
	}
	return c.JSON(dto.MessageResponse{Message: cityMessages.updated})
}

// Delete godoc
// @Summary      Borrar cidade
// @Tags         cidades
// @Produce      json
// @Param        id   path  int  true  "ID da cidade"
// @Success      200  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /cidades/{id} [delete]
func (h *CityHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, cityMessages.delete)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, cityMessages.delete)
	}
	return c.JSON(dto.MessageResponse{Message: cityMessages.deleted})
}
