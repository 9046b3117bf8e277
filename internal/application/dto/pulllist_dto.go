package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddPullItemRequest entrada para agregar una línea a la pull list.
type AddPullItemRequest struct {
	PartID int64 `json:"part_id" validate:"required"`
	Qty    int64 `json:"qty" validate:"min=1"`
}

// PullItemResponse una línea de la sesión.
type PullItemResponse struct {
	PartID    int64           `json:"part_id"`
	SKU       string          `json:"part_number"`
	Name      string          `json:"name"`
	Color     string          `json:"color"`
	Qty       int64           `json:"qty"`
	Price     decimal.Decimal `json:"price"`
	LineTotal decimal.Decimal `json:"total"`
}

// PullListResponse estado de la sesión: líneas actuales y última factura.
type PullListResponse struct {
	Items   []PullItemResponse `json:"items"`
	Invoice *InvoiceResponse   `json:"invoice,omitempty"`
}

// FinalizeRequest entrada del finalize (cliente de la factura).
type FinalizeRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}

// SendInvoiceRequest entrada del envío; Recipient vacío usa el email del finalize.
type SendInvoiceRequest struct {
	Recipient string `json:"recipient"`
}

// InvoiceResponse factura generada.
type InvoiceResponse struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email,omitempty"`
	Path          string          `json:"path"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
	Status        string          `json:"status"`
	GeneratedAt   time.Time       `json:"generated_at"`
}

// DocumentResponse ruta de un documento generado.
type DocumentResponse struct {
	Path string `json:"path"`
}
