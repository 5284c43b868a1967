package http

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/application/usecase"
	"github.com/jhoicas/pdv-api/internal/domain"
)

var personMessages = messages{
	list:    "Erro ao buscar pessoas.",
	get:     "Erro ao buscar pessoa.",
	create:  "Erro ao criar pessoa.",
	update:  "Erro ao atualizar pessoa.",
	delete:  "Erro ao deletar pessoa.",
	created: "Pessoa criada com sucesso.",
	updated: "Pessoa atualizada com sucesso.",
	deleted: "Pessoa deletada com sucesso.",
}

// PersonHandler maneja /pessoas.
type PersonHandler struct {
	uc *usecase.PersonUseCase
}

// NewPersonHandler construye el handler.
func NewPersonHandler(uc *usecase.PersonUseCase) *PersonHandler {
	return &PersonHandler{uc: uc}
}

// List godoc
// @Summary      Listar pessoas
// @Description  Filtros opcionales combinados con AND. nome busca por subcadena sin distinguir mayúsculas.
// @Tags         pessoas
// @Produce      json
// @Param        nome    query  string  false  "Parte do nome"
// @Param        cidade  query  int     false  "ID da cidade"
// @Param        bairro  query  int     false  "ID do bairro"
// @Success      200  {array}   dto.PersonResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /pessoas [get]
func (h *PersonHandler) List(c *fiber.Ctx) error {
	var (
		f   dto.PersonFilter
		err error
	)
	if f.CidadeID, err = queryID(c, "cidade"); err != nil {
		return respondError(c, err, personMessages.list)
	}
	if f.BairroID, err = queryID(c, "bairro"); err != nil {
		return respondError(c, err, personMessages.list)
	}
	f.Nome = queryString(c, "nome")

	out, err := h.uc.ListByFilters(c.UserContext(), f)
	if err != nil {
		return respondError(c, err, personMessages.list)
	}
	return c.JSON(out)
}

// ListByPath es la forma posicional /pessoas/:cidade/:bairro/:nome del mismo filtro.
func (h *PersonHandler) ListByPath(c *fiber.Ctx) error {
	cityID, err := paramID(c, "cidade")
	if err != nil {
		return respondError(c, err, personMessages.list)
	}
	bairroID, err := paramID(c, "bairro")
	if err != nil {
		return respondError(c, err, personMessages.list)
	}
	name, err := url.PathUnescape(c.Params("nome"))
	if err != nil {
		return respondError(c, fmt.Errorf("%w: nome mal codificado", domain.ErrInvalidInput), personMessages.list)
	}

	out, err := h.uc.ListByFilters(c.UserContext(), dto.PersonFilter{
		CidadeID: &cityID,
		BairroID: &bairroID,
		Nome:     &name,
	})
	if err != nil {
		return respondError(c, err, personMessages.list)
	}
	return c.JSON(out)
}

func (h *PersonHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, personMessages.get)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, personMessages.get)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear pessoa
// @Tags         pessoas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PersonRequest  true  "Datos de la pessoa"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /pessoas [post]
func (h *PersonHandler) Create(c *fiber.Ctx) error {
	var in dto.PersonRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err, personMessages.create)
	}
	id, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, personMessages.create)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id, Message: personMessages.created})
}

func (h *PersonHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, personMessages.update)
	}
	var in dto.PersonRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err, personMessages.update)
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return respondError(c, err, personMessages.update)
	}
	return c.JSON(dto.MessageResponse{Message: personMessages.updated})
}

func (h *PersonHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, personMessages.delete)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, personMessages.delete)
	}
	return c.JSON(dto.MessageResponse{Message: personMessages.deleted})
}
