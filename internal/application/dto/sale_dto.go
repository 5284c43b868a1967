package dto

import "github.com/shopspring/decimal"

// CreateSaleRequest alta de una venda. Con itens la venta y sus líneas se graban en una sola transacción;
// si vrtotal viene en cero se calcula como la suma de los subtotales.
type CreateSaleRequest struct {
	Data     string          `json:"data" validate:"required"`
	PessoaFK int64           `json:"pessoa_fk" validate:"required,gt=0"`
	VrTotal  decimal.Decimal `json:"vrtotal"`
	Itens    []SaleLineInput `json:"itens" validate:"omitempty,dive"`
}

// SaleLineInput línea incluida en el alta de una venta.
type SaleLineInput struct {
	ProdutoFK int64           `json:"produto_fk" validate:"required,gt=0"`
	Unidades  int             `json:"unidades" validate:"required,gt=0,max=2147483647"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// UpdateSaleRequest modificación completa de la cabecera.
type UpdateSaleRequest struct {
	Data     string          `json:"data" validate:"required"`
	PessoaFK int64           `json:"pessoa_fk" validate:"required,gt=0"`
	VrTotal  decimal.Decimal `json:"vrtotal"`
}

// SaleCreatedResponse respuesta de POST /vendas.
type SaleCreatedResponse struct {
	VendaID int64  `json:"vendaId"`
	Message string `json:"message"`
}

// SaleResponse salida de una venda; Itens solo se rellena en el detalle.
type SaleResponse struct {
	ID       int64              `json:"id"`
	Data     string             `json:"data"`
	PessoaFK int64              `json:"pessoa_fk"`
	VrTotal  decimal.Decimal    `json:"vrtotal"`
	Itens    []SaleItemResponse `json:"itens,omitempty"`
}

// SaleFilter filtros de GET /vendas. Las fechas llegan como YYYY-MM-DD y se validan en el caso de uso.
type SaleFilter struct {
	DataInicio *string
	DataFim    *string
	PessoaID   *int64
	ProdutoID  *int64
}

// SaleItemRequest alta y modificación de un item de venda.
type SaleItemRequest struct {
	VendaFK   int64           `json:"venda_fk" validate:"required,gt=0"`
	ProdutoFK int64           `json:"produto_fk" validate:"required,gt=0"`
	Unidades  int             `json:"unidades" validate:"required,gt=0,max=2147483647"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleItemResponse salida de un item de venda.
type SaleItemResponse struct {
	ID        int64           `json:"id"`
	VendaFK   int64           `json:"venda_fk"`
	ProdutoFK int64           `json:"produto_fk"`
	Unidades  int             `json:"unidades"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleReceipt datos desnormalizados para el comprobante PDF.
type SaleReceipt struct {
	VendaID  int64
	Data     string
	Cliente  string
	Email    string
	Telefone string
	Endereco string
	Linhas   []ReceiptLine
	VrTotal  decimal.Decimal
}

// ReceiptLine línea del comprobante.
type ReceiptLine struct {
	Produto       string
	Unidades      int
	ValorUnitario decimal.Decimal
	Subtotal      decimal.Decimal
}
