// Package smtp implementa el envío de facturas por correo sobre gomail,
// contra un relay fijo (por defecto smtp.gmail.com:587, STARTTLS).
package smtp

import (
	"fmt"
	"os"

	gomail "gopkg.in/gomail.v2"

	"github.com/tu-usuario/bagmaker-pro/internal/application/pulllist"
	"github.com/tu-usuario/bagmaker-pro/pkg/config"
)

var _ pulllist.MailSender = (*GomailSender)(nil)

// GomailSender implementa pulllist.MailSender. Las credenciales llegan por
// configuración (SMTP_USER / SMTP_PASS) y se usan solo al momento del envío.
type GomailSender struct {
	cfg config.SMTPConfig
}

// NewGomailSender construye el sender.
func NewGomailSender(cfg config.SMTPConfig) *GomailSender {
	return &GomailSender{cfg: cfg}
}

// Send abre una sesión SMTP, autentica, adjunta el documento por su nombre de
// archivo y envía. Cualquier fallo (auth, red, lectura del adjunto) se
// devuelve al caller; no hay reintento automático.
func (s *GomailSender) Send(path, recipient, subject, body string) error {
	// Verificar el adjunto antes de abrir la conexión: un path inexistente
	// debe fallar como error de adjunto, no a mitad del diálogo SMTP.
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("leer adjunto: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.User)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	m.Attach(path)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar correo: %w", err)
	}
	return nil
}
