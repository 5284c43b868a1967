package dto

import "github.com/shopspring/decimal"

// ProductRequest alta y modificación de un produto. valor acepta número o string numérico.
type ProductRequest struct {
	Nome  string          `json:"nome" validate:"required,max=150"`
	Valor decimal.Decimal `json:"valor"`
}

// ProductResponse salida de un produto.
type ProductResponse struct {
	ID    int64           `json:"id"`
	Nome  string          `json:"nome"`
	Valor decimal.Decimal `json:"valor"`
}
