package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/application/pedidos"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/application/ports"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/infrastructure/excel"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Consulta    *pedidos.ConsultaUseCase
	Entregar    *pedidos.EntregarUseCase
	Refrescador ports.Refrescador
	Exportador  *excel.Exportador
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	handler := NewPedidosHandler(deps.Consulta, deps.Entregar, deps.Refrescador, deps.Exportador)

	grupo := api.Group("/pedidos")
	grupo.Get("/", handler.Listar)
	grupo.Get("/totales", handler.Totales)
	grupo.Get("/exportar", handler.Exportar)
	grupo.Post("/refrescar", handler.Refrescar)
	grupo.Post("/:codigo/entregar", handler.Entregar)
}
