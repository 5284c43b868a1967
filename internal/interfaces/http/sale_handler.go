package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/application/usecase"
)

var saleMessages = messages{
	list:    "Erro ao buscar vendas.",
	get:     "Erro ao buscar venda.",
	create:  "Erro ao criar venda.",
	update:  "Erro ao atualizar venda.",
	delete:  "Erro ao deletar venda.",
	created: "Venda criada com sucesso.",
	updated: "Venda atualizada com sucesso.",
	deleted: "Venda deletada com sucesso.",
}

const receiptError = "Erro ao gerar comprovante."

// SaleHandler maneja /vendas.
type SaleHandler struct {
	uc        *usecase.SaleUseCase
	receiptUC *usecase.SaleReceiptUseCase
}

// NewSaleHandler construye el handler. receiptUC puede ser nil si no se expone el comprobante.
func NewSaleHandler(uc *usecase.SaleUseCase, receiptUC *usecase.SaleReceiptUseCase) *SaleHandler {
	return &SaleHandler{uc: uc, receiptUC: receiptUC}
}

// List godoc
// @Summary      Listar vendas
// @Description  date1/date2 (YYYY-MM-DD) son inclusivos; produto selecciona ventas con al menos un item de ese produto.
// @Tags         vendas
// @Produce      json
// @Param        date1    query  string  false  "Data inicial"
// @Param        date2    query  string  false  "Data final"
// @Param        pessoa   query  int     false  "ID da pessoa"
// @Param        produto  query  int     false  "ID do produto"
// @Success      200  {array}   dto.SaleResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /vendas [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var (
		f   dto.SaleFilter
		err error
	)
	f.DataInicio = queryString(c, "date1")
	f.DataFim = queryString(c, "date2")
	if f.PessoaID, err = queryID(c, "pessoa"); err != nil {
		return respondError(c, err, saleMessages.list)
	}
	if f.ProdutoID, err = queryID(c, "produto"); err != nil {
		return respondError(c, err, saleMessages.list)
	}

	out, err := h.uc.ListByFilters(c.UserContext(), f)
	if err != nil {
		return respondError(c, err, saleMessages.list)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener venda con sus itens
// @Tags         vendas
// @Produce      json
// @Param        id   path  int  true  "ID da venda"
// @Success      200  {object}  dto.SaleResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /vendas/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, saleMessages.get)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, saleMessages.get)
	}
	return c.JSON(out)
}

func (h *SaleHandler) Items(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, saleItemMessages.list)
	}
	out, err := h.uc.Items(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, saleItemMessages.list)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Descargar comprovante PDF de la venda
// @Tags         vendas
// @Produce      application/pdf
// @Param        id   path  int  true  "ID da venda"
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /vendas/{id}/comprovante [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, receiptError)
	}
	pdf, filename, err := h.receiptUC.Generate(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, receiptError)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
	return c.Send(pdf)
}

// Create godoc
// @Summary      Crear venda
// @Description  Con itens, venda e itens se graban en una transacción; vrtotal cero se calcula.
// @Tags         vendas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Venda"
// @Success      200   {object}  dto.SaleCreatedResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /vendas [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err, saleMessages.create)
	}
	id, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, saleMessages.create)
	}
	// POST /vendas responde 200 con vendaId.
	return c.JSON(dto.SaleCreatedResponse{VendaID: id, Message: saleMessages.created})
}

func (h *SaleHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, saleMessages.update)
	}
	var in dto.UpdateSaleRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err, saleMessages.update)
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return respondError(c, err, saleMessages.update)
	}
	return c.JSON(dto.MessageResponse{Message: saleMessages.updated})
}

// Delete borra la venda y sus itens.
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, saleMessages.delete)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, saleMessages.delete)
	}
	return c.JSON(dto.MessageResponse{Message: saleMessages.deleted})
}
