package entity

import (
	"github.com/shopspring/decimal"
)

// PullItem línea transitoria de la sesión de pull list. El precio es un snapshot
// tomado al agregar la línea; no se relee de Part al finalizar. Agregar la misma
// pieza dos veces produce dos líneas (no se fusionan).
type PullItem struct {
	PartID int64
	SKU    string
	Name   string
	Color  Color
	Qty    int64
	Price  decimal.Decimal // snapshot del precio unitario al momento del Add
}

// LineTotal devuelve qty × precio snapshot.
func (i PullItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(i.Qty))
}
