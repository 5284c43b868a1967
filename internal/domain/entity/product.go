package entity

import "github.com/shopspring/decimal"

// Product representa un producto vendible (tabla produtos).
type Product struct {
	ID    int64
	Name  string
	Price decimal.Decimal // valor unitario
}
