package entity

import (
	"github.com/shopspring/decimal"
)

// Part representa una pieza del inventario del taller (tela, herraje, cremallera, etc.).
// El ID lo asigna la base de datos al insertar (BIGSERIAL). Qty puede quedar negativo
// si se descuenta de más: el sistema no impone un piso, solo lo reporta.
type Part struct {
	ID       int64
	SKU      string // part_number; sin chequeo de unicidad
	Name     string
	Category Category
	Color    Color
	Qty      int64
	Cost     decimal.Decimal // costo unitario
	Price    decimal.Decimal // precio de venta unitario
}
