package pulllist

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/bagmaker-pro/internal/domain"
	"github.com/tu-usuario/bagmaker-pro/internal/domain/entity"
	"github.com/tu-usuario/bagmaker-pro/internal/domain/repository"
	"github.com/tu-usuario/bagmaker-pro/pkg/logger"
)

// defaultCustomer nombre usado cuando el finalize llega sin cliente.
const defaultCustomer = "Retail Customer"

// UseCase orquesta la sesión de pull list: agregar líneas con snapshot de
// precio, generar la pull list de taller, finalizar (descontar stock +
// facturar) y enviar la factura por correo.
type UseCase struct {
	session   *Session
	parts     repository.PartRepository
	txRunner  TxRunner
	generator DocumentGenerator
	sender    MailSender
	outputDir string
	log       *logger.Logger
}

// NewUseCase construye el caso de uso inyectando todas sus dependencias.
func NewUseCase(
	session *Session,
	parts repository.PartRepository,
	txRunner TxRunner,
	generator DocumentGenerator,
	sender MailSender,
	outputDir string,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		session:   session,
		parts:     parts,
		txRunner:  txRunner,
		generator: generator,
		sender:    sender,
		outputDir: outputDir,
		log:       log,
	}
}

// AddItem busca la pieza, toma el snapshot de precio y agrega la línea a la
// sesión. qty >= 1 se valida aquí (el almacén no lo impone). No fusiona
// líneas de la misma pieza.
func (uc *UseCase) AddItem(partID int64, qty int64) (*entity.PullItem, error) {
	if qty < 1 {
		return nil, domain.ErrInvalidInput
	}
	part, err := uc.parts.GetByID(partID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	item := entity.PullItem{
		PartID: part.ID,
		SKU:    part.SKU,
		Name:   part.Name,
		Color:  part.Color,
		Qty:    qty,
		Price:  part.Price, // snapshot: no se relee al finalizar
	}
	uc.session.Add(item)
	return &item, nil
}

// Items devuelve las líneas actuales de la sesión.
func (uc *UseCase) Items() []entity.PullItem {
	return uc.session.Items()
}

// Clear vacía la sesión.
func (uc *UseCase) Clear() {
	uc.session.Clear()
}

// Invoice devuelve la última factura generada, o nil.
func (uc *UseCase) Invoice() *entity.InvoiceRecord {
	return uc.session.Invoice()
}

// GeneratePullList renderiza la sesión actual como pull list de taller
// (sin precios), sin descontar stock. Siempre escribe pull_list.pdf.
func (uc *UseCase) GeneratePullList(ctx context.Context) (string, error) {
	items := uc.session.Items()
	if len(items) == 0 {
		return "", domain.ErrEmptySession
	}
	path := filepath.Join(uc.outputDir, pullListFilename)
	return uc.generator.Generate(ctx, DocumentInput{
		Title:      "WORKSHOP PULL LIST",
		OutputPath: path,
		Mode:       ModePullList,
		Items:      items,
	})
}

// Finalize descuenta el stock de todas las líneas en una sola transacción,
// genera la factura PDF y vacía la sesión. Con la sesión vacía es un no-op:
// no descuenta nada, no genera documento y devuelve (nil, nil).
func (uc *UseCase) Finalize(ctx context.Context, customerName, customerEmail string) (*entity.InvoiceRecord, error) {
	items := uc.session.Items()
	if len(items) == 0 {
		return nil, nil
	}
	if customerName == "" {
		customerName = defaultCustomer
	}

	// Lote de decrementos todo-o-nada: si uno falla, ninguno queda aplicado
	// y la sesión conserva sus líneas.
	err := uc.txRunner.Run(ctx, func(parts repository.PartRepository) error {
		for _, item := range items {
			if err := parts.AdjustQuantity(item.PartID, item.Qty); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("descontar stock: %w", err)
	}

	path := filepath.Join(uc.outputDir, invoiceFilename(customerName))
	if _, err := uc.generator.Generate(ctx, DocumentInput{
		Title:      "INVOICE: " + customerName,
		OutputPath: path,
		Mode:       ModeInvoice,
		Items:      items,
	}); err != nil {
		// El stock ya quedó descontado; el error de generación se propaga
		// al caller y la sesión conserva sus líneas para reintentar.
		return nil, fmt.Errorf("generar factura: %w", err)
	}

	grandTotal := decimal.Zero
	for _, item := range items {
		grandTotal = grandTotal.Add(item.LineTotal())
	}

	record := &entity.InvoiceRecord{
		ID:            uuid.New().String(),
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Path:          path,
		GrandTotal:    grandTotal,
		Status:        entity.InvoiceStatusGenerated,
		GeneratedAt:   time.Now(),
	}
	uc.session.SetInvoice(record)
	uc.session.Clear()

	uc.log.Info().
		Str("invoice_id", record.ID).
		Str("customer", customerName).
		Str("path", path).
		Int("lines", len(items)).
		Msg("factura generada y stock descontado")

	return record, nil
}

// SendInvoice envía la factura actual como adjunto. recipient vacío usa el
// email capturado en el finalize. Un fallo deja el estado en GENERATED,
// habilitando un segundo intento sin regenerar el documento.
func (uc *UseCase) SendInvoice(recipient string) (*entity.InvoiceRecord, error) {
	inv := uc.session.Invoice()
	if inv == nil {
		return nil, domain.ErrNoInvoice
	}
	if recipient == "" {
		recipient = inv.CustomerEmail
	}
	if recipient == "" {
		return nil, domain.ErrInvalidInput
	}

	subject := "Invoice for " + inv.CustomerName
	body := "Hello, please find your bag parts invoice attached."
	if err := uc.sender.Send(inv.Path, recipient, subject, body); err != nil {
		uc.log.Warn().Err(err).Str("invoice_id", inv.ID).Msg("envío de factura fallido")
		return nil, fmt.Errorf("%w: %v", domain.ErrSendFailed, err)
	}

	uc.session.MarkSent()
	uc.log.Info().Str("invoice_id", inv.ID).Str("recipient", recipient).Msg("factura enviada")
	return uc.session.Invoice(), nil
}
