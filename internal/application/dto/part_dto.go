package dto

import (
	"github.com/shopspring/decimal"
)

// CreatePartRequest entrada para crear una pieza.
// Category y Color se validan contra los conjuntos cerrados; vacío es válido.
type CreatePartRequest struct {
	SKU      string          `json:"part_number" validate:"required,min=1,max=100"`
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Category string          `json:"category"`
	Color    string          `json:"color"`
	Qty      int64           `json:"qty" validate:"min=0"`
	Cost     decimal.Decimal `json:"cost"`
	Price    decimal.Decimal `json:"price"`
}

// UpdatePartRequest entrada para editar/reabastecer: sobreescribe los tres
// campos numéricos mutables. SKU, nombre, categoría y color no se editan.
type UpdatePartRequest struct {
	Qty   int64           `json:"qty"`
	Cost  decimal.Decimal `json:"cost"`
	Price decimal.Decimal `json:"price"`
}

// PartResponse salida de una pieza.
type PartResponse struct {
	ID       int64           `json:"id"`
	SKU      string          `json:"part_number"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Color    string          `json:"color"`
	Qty      int64           `json:"qty"`
	Cost     decimal.Decimal `json:"cost"`
	Price    decimal.Decimal `json:"price"`
	LowStock bool            `json:"low_stock"`
}

// PartListResponse listado completo del inventario.
type PartListResponse struct {
	Items []PartResponse `json:"items"`
}
