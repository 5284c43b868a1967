package entity

import "github.com/shopspring/decimal"

// SaleItem línea de una venta (tabla itensvenda). Al borrar la venta se borran sus líneas.
type SaleItem struct {
	ID        int64
	SaleID    int64
	ProductID int64
	Units     int
	Subtotal  decimal.Decimal
}
