package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/application/usecase"
)

var productMessages = messages{
	list:    "Erro ao buscar produtos.",
	get:     "Erro ao buscar produto.",
	create:  "Erro ao criar produto.",
	update:  "Erro ao atualizar produto.",
	delete:  "Erro ao deletar produto.",
	created: "Produto criado com sucesso.",
	updated: "Produto atualizado com sucesso.",
	deleted: "Produto deletado com sucesso.",
}

// ProductHandler maneja las peticiones HTTP para /produtos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar produtos
// @Tags         produtos
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /produtos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err, productMessages.list)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener produto por ID
// @Tags         produtos
// @Produce      json
// @Param        id   path  int  true  "ID do produto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /produtos/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, productMessages.get)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, productMessages.get)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear produto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del produto"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /produtos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err, productMessages.create)
	}
	id, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, productMessages.create)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id, Message: productMessages.created})
}

// Update godoc
// @Summary      Actualizar produto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID do produto"
// @Param        body  body  dto.ProductRequest  true  "Datos del produto"
// @Success      200   {object}  dto.MessageResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /produtos/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, productMessages.update)
	}
	var in dto.ProductRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err, productMessages.update)
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return respondError(c, err, productMessages.update)
	}
	return c.JSON(dto.MessageResponse{Message: productMessages.updated})
}

// Delete godoc
// @Summary      Borrar produto
// @Description  Rechaza con 409 si algún item de venda referencia el produto.
// @Tags         produtos
// @Produce      json
// @Param        id   path  int  true  "ID do produto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /produtos/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, productMessages.delete)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, productMessages.delete)
	}
	return c.JSON(dto.MessageResponse{Message: productMessages.deleted})
}
