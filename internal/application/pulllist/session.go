package pulllist

import (
	"sync"

	"github.com/tu-usuario/bagmaker-pro/internal/domain/entity"
)

// Session estado mutable de la sesión de trabajo: la secuencia ordenada de
// líneas por descontar y el puntero a la última factura generada.
// Se crea una vez al arrancar y se inyecta en los handlers; el mutex cubre
// el acceso concurrente desde Fiber aunque el uso previsto sea mono-usuario.
type Session struct {
	mu      sync.Mutex
	items   []entity.PullItem
	invoice *entity.InvoiceRecord
}

// NewSession crea una sesión vacía, sin factura.
func NewSession() *Session {
	return &Session{}
}

// Add agrega una línea al final. No fusiona duplicados: agregar la misma
// pieza dos veces produce dos líneas.
func (s *Session) Add(item entity.PullItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}

// Items devuelve una copia de las líneas en orden de inserción.
func (s *Session) Items() []entity.PullItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.PullItem, len(s.items))
	copy(out, s.items)
	return out
}

// Clear vacía la secuencia de líneas. No toca la factura generada.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Invoice devuelve la última factura generada, o nil si no hay.
func (s *Session) Invoice() *entity.InvoiceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.invoice == nil {
		return nil
	}
	cp := *s.invoice
	return &cp
}

// SetInvoice reemplaza el puntero a la factura actual (tras un finalize).
func (s *Session) SetInvoice(inv *entity.InvoiceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoice = inv
}

// MarkSent pasa la factura actual a SENT. Solo se invoca tras un envío exitoso;
// un fallo deja el estado en GENERATED y permite reintentar.
func (s *Session) MarkSent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.invoice != nil {
		s.invoice.Status = entity.InvoiceStatusSent
	}
}
