package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/bagmaker-pro/internal/application/pulllist"
	"github.com/tu-usuario/bagmaker-pro/internal/application/usecase"
	infrapdf "github.com/tu-usuario/bagmaker-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/bagmaker-pro/internal/infrastructure/postgres"
	infrasmtp "github.com/tu-usuario/bagmaker-pro/internal/infrastructure/smtp"
	httpRouter "github.com/tu-usuario/bagmaker-pro/internal/interfaces/http"
	"github.com/tu-usuario/bagmaker-pro/pkg/config"
	"github.com/tu-usuario/bagmaker-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema de la base")
	}

	partRepo := postgres.NewPartRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	pdfGenerator := infrapdf.NewMarotoGenerator(cfg.Business)
	mailSender := infrasmtp.NewGomailSender(cfg.SMTP)

	partUC := usecase.NewPartUseCase(partRepo, cfg.Inventory.LowStockThreshold)

	// Sesión única: herramienta mono-usuario, ciclo de vida = ciclo del proceso.
	session := pulllist.NewSession()
	pullListUC := pulllist.NewUseCase(
		session, partRepo, txRunner, pdfGenerator, mailSender,
		cfg.Documents.OutputDir, log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bag Maker Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PartUC:     partUC,
		PullListUC: pullListUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
