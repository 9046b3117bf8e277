package pulllist

import (
	"context"

	"github.com/tu-usuario/bagmaker-pro/internal/domain/entity"
	"github.com/tu-usuario/bagmaker-pro/internal/domain/repository"
)

// DocumentMode selecciona la variante del documento generado.
type DocumentMode string

// Modos de documento: la pull list de taller no lleva precios;
// la factura agrega la columna Total, el gran total y el pie de agradecimiento.
const (
	ModePullList DocumentMode = "PULL_LIST"
	ModeInvoice  DocumentMode = "INVOICE"
)

// DocumentInput entrada para el generador de documentos.
type DocumentInput struct {
	Title      string
	OutputPath string
	Mode       DocumentMode
	Items      []entity.PullItem
}

// DocumentGenerator renderiza las líneas a un PDF en disco y devuelve la ruta escrita.
// Un error de I/O al escribir se propaga sin capturar.
type DocumentGenerator interface {
	Generate(ctx context.Context, in DocumentInput) (string, error)
}

// MailSender envía un documento ya generado como adjunto de correo.
type MailSender interface {
	Send(path, recipient, subject, body string) error
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio atado a esa tx. Garantiza que el lote de decrementos del
// finalize sea todo-o-nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(parts repository.PartRepository) error) error
}
