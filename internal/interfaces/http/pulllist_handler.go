package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/bagmaker-pro/internal/application/dto"
	"github.com/tu-usuario/bagmaker-pro/internal/application/pulllist"
	"github.com/tu-usuario/bagmaker-pro/internal/domain"
	"github.com/tu-usuario/bagmaker-pro/internal/domain/entity"
)

// PullListHandler maneja la sesión de pull list y el ciclo de la factura.
type PullListHandler struct {
	uc *pulllist.UseCase
}

// NewPullListHandler construye el handler.
func NewPullListHandler(uc *pulllist.UseCase) *PullListHandler {
	return &PullListHandler{uc: uc}
}

// Get godoc
// @Summary      Estado de la sesión: líneas actuales y última factura
// @Tags         pull-list
// @Produce      json
// @Success      200  {object}  dto.PullListResponse
// @Router       /api/pull-list [get]
func (h *PullListHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.toPullListResponse())
}

// AddItem godoc
// @Summary      Agregar una línea a la pull list (snapshot de precio)
// @Tags         pull-list
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddPullItemRequest  true  "Pieza y cantidad"
// @Success      201   {object}  dto.PullItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pull-list/items [post]
func (h *PullListHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddPullItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.AddItem(in.PartID, in.Qty)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "qty debe ser al menos 1"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pieza no encontrada"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(toPullItemResponse(*item))
}

// Clear godoc
// @Summary      Vaciar la pull list
// @Tags         pull-list
// @Produce      json
// @Success      200  {object}  dto.PullListResponse
// @Router       /api/pull-list/items [delete]
func (h *PullListHandler) Clear(c *fiber.Ctx) error {
	h.uc.Clear()
	return c.JSON(h.toPullListResponse())
}

// GeneratePullList godoc
// @Summary      Generar la pull list de taller (PDF sin precios)
// @Tags         pull-list
// @Produce      json
// @Success      200  {object}  dto.DocumentResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pull-list/document [post]
func (h *PullListHandler) GeneratePullList(c *fiber.Ctx) error {
	path, err := h.uc.GeneratePullList(c.UserContext())
	if err != nil {
		if errors.Is(err, domain.ErrEmptySession) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMPTY_LIST", Message: "la pull list está vacía"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.DocumentResponse{Path: path})
}

// Finalize godoc
// @Summary      Finalizar: descontar stock y generar la factura
// @Tags         pull-list
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FinalizeRequest  true  "Cliente de la factura"
// @Success      200   {object}  dto.InvoiceResponse
// @Success      204   "Sesión vacía: no-op"
// @Router       /api/pull-list/finalize [post]
func (h *PullListHandler) Finalize(c *fiber.Ctx) error {
	var in dto.FinalizeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	record, err := h.uc.Finalize(c.UserContext(), in.CustomerName, in.CustomerEmail)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if record == nil {
		// Sesión vacía: sin decrementos, sin documento.
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(toInvoiceResponse(record))
}

// SendInvoice godoc
// @Summary      Enviar la factura generada por correo
// @Tags         invoice
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendInvoiceRequest  false  "Destinatario (opcional)"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/invoice/send [post]
func (h *PullListHandler) SendInvoice(c *fiber.Ctx) error {
	var in dto.SendInvoiceRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	record, err := h.uc.SendInvoice(in.Recipient)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoInvoice):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_INVOICE", Message: "no hay factura generada; finalice una pull list primero"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "destinatario requerido"})
		case errors.Is(err, domain.ErrSendFailed):
			// La factura queda en GENERATED: se puede reintentar el envío.
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "SEND_FAILED", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(toInvoiceResponse(record))
}

func (h *PullListHandler) toPullListResponse() dto.PullListResponse {
	items := h.uc.Items()
	out := dto.PullListResponse{Items: make([]dto.PullItemResponse, 0, len(items))}
	for _, item := range items {
		out.Items = append(out.Items, toPullItemResponse(item))
	}
	if inv := h.uc.Invoice(); inv != nil {
		resp := toInvoiceResponse(inv)
		out.Invoice = &resp
	}
	return out
}

func toPullItemResponse(item entity.PullItem) dto.PullItemResponse {
	return dto.PullItemResponse{
		PartID:    item.PartID,
		SKU:       item.SKU,
		Name:      item.Name,
		Color:     string(item.Color),
		Qty:       item.Qty,
		Price:     item.Price,
		LineTotal: item.LineTotal(),
	}
}

func toInvoiceResponse(inv *entity.InvoiceRecord) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:            inv.ID,
		CustomerName:  inv.CustomerName,
		CustomerEmail: inv.CustomerEmail,
		Path:          inv.Path,
		GrandTotal:    inv.GrandTotal,
		Status:        inv.Status,
		GeneratedAt:   inv.GeneratedAt,
	}
}
