package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de la factura generada.
// no-invoice → generated → sent. Un fallo de envío deja el estado en
// generated (permite reintentar); volver a generated requiere un nuevo finalize.
const (
	InvoiceStatusGenerated = "GENERATED"
	InvoiceStatusSent      = "SENT"
)

// InvoiceRecord factura generada por un finalize: artefacto PDF en disco más
// los datos necesarios para enviarla por correo.
type InvoiceRecord struct {
	ID            string // uuid
	CustomerName  string
	CustomerEmail string
	Path          string // ruta del PDF en disco
	GrandTotal    decimal.Decimal
	Status        string
	GeneratedAt   time.Time
}
