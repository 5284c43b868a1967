package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato de fecha de venta en la API y en los filtros.
const DateLayout = "2006-01-02"

// Sale cabecera de una venta (tabla vendas).
type Sale struct {
	ID       int64
	Date     time.Time // solo fecha, sin hora
	PersonID int64
	Total    decimal.Decimal
}
