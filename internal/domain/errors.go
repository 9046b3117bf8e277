package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrEmptySession = errors.New("la lista de pull está vacía")
	ErrNoInvoice    = errors.New("no hay factura generada")
	ErrSendFailed   = errors.New("el envío del correo falló")
)
