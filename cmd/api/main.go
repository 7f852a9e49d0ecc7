package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/application/pedidos"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/infrastructure/excel"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/infrastructure/memoria"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/infrastructure/sheets"
	httpRouter "github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/interfaces/http"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/pkg/config"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/pkg/logger"
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
		Str("hoja", cfg.Planilla.SheetName).
		Msg("iniciando aplicación")

	// Infraestructura: hoja remota + snapshot en memoria.
	store := memoria.NewStore()
	fuente := sheets.NewCSVClient(cfg.Planilla)
	script := sheets.NewScriptClient(cfg.Planilla)
	poller := memoria.NewPoller(fuente, store, cfg.Planilla.PollInterval, log)

	ctxPoller, detenerPoller := context.WithCancel(context.Background())
	go poller.Ejecutar(ctxPoller)

	// Casos de uso.
	consultaUC := pedidos.NewConsultaUseCase(store, cfg.Pedidos)
	entregarUC := pedidos.NewEntregarUseCase(store, script, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New()) // el visualizador vive en otro origen
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":      "ok",
			"service":     cfg.App.Name,
			"actualizado": store.Actualizado(),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Consulta:    consultaUC,
		Entregar:    entregarUC,
		Refrescador: poller,
		Exportador:  excel.NewExportador(),
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
	detenerPoller()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
