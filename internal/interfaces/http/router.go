package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/bagmaker-pro/internal/application/pulllist"
	"github.com/tu-usuario/bagmaker-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PartUC     *usecase.PartUseCase
	PullListUC *pulllist.UseCase
}

// Router registra las rutas de la API. Sin autenticación: herramienta mono-usuario.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Inventario de piezas
	parts := api.Group("/parts")
	partHandler := NewPartHandler(deps.PartUC)
	parts.Get("/", partHandler.List)
	parts.Post("/", partHandler.Create)
	parts.Get("/low-stock", partHandler.LowStock)
	parts.Get("/export", partHandler.ExportCSV)
	parts.Get("/:id", partHandler.GetByID)
	parts.Put("/:id", partHandler.Update)

	// Pull list y facturación
	pull := api.Group("/pull-list")
	pullHandler := NewPullListHandler(deps.PullListUC)
	pull.Get("/", pullHandler.Get)
	pull.Post("/items", pullHandler.AddItem)
	pull.Delete("/items", pullHandler.Clear)
	pull.Post("/document", pullHandler.GeneratePullList)
	pull.Post("/finalize", pullHandler.Finalize)

	// Envío de la factura generada
	invoice := api.Group("/invoice")
	invoice.Post("/send", pullHandler.SendInvoice)
}
