// Package http expone la API del visualizador sobre Fiber.
package http

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/application/dto"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/application/pedidos"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/application/ports"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/domain"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/infrastructure/excel"
)

// PedidosHandler maneja los endpoints del visualizador de pedidos.
type PedidosHandler struct {
	consulta    *pedidos.ConsultaUseCase
	entregar    *pedidos.EntregarUseCase
	refrescador ports.Refrescador
	exportador  *excel.Exportador
}

// NewPedidosHandler construye el handler.
func NewPedidosHandler(
	consulta *pedidos.ConsultaUseCase,
	entregar *pedidos.EntregarUseCase,
	refrescador ports.Refrescador,
	exportador *excel.Exportador,
) *PedidosHandler {
	return &PedidosHandler{
		consulta:    consulta,
		entregar:    entregar,
		refrescador: refrescador,
		exportador:  exportador,
	}
}

// Listar devuelve los grupos de pedido visibles.
// GET /api/pedidos?q=&estado=&cierre=&desde=&hasta=&agrupar_por=&politica_deuda=
func (h *PedidosHandler) Listar(c *fiber.Ctx) error {
	var req dto.FiltroRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "BAD_REQUEST", Message: err.Error(),
		})
	}
	return c.JSON(h.consulta.Listar(req))
}

// Totales devuelve las sumas globales; pide la clave de totales.
// GET /api/pedidos/totales?clave=
func (h *PedidosHandler) Totales(c *fiber.Ctx) error {
	var req dto.FiltroRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "BAD_REQUEST", Message: err.Error(),
		})
	}

	clave := c.Query("clave")
	if clave == "" {
		clave = c.Get("X-Clave-Totales")
	}

	totales, err := h.consulta.Totales(req, clave)
	if err != nil {
		return respuestaDeError(c, err)
	}
	return c.JSON(totales)
}

// Entregar marca el pedido como entregado en la hoja remota.
// POST /api/pedidos/:codigo/entregar  body: {"modo_rapido": bool}
func (h *PedidosHandler) Entregar(c *fiber.Ctx) error {
	codigo, err := urlParam(c, "codigo")
	if err != nil {
		return respuestaDeError(c, domain.ErrCodigoFaltante)
	}

	var req dto.EntregarRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "BAD_REQUEST", Message: err.Error(),
			})
		}
	}

	if err := h.entregar.MarcarEntregado(c.Context(), codigo, req.ModoRapido); err != nil {
		return respuestaDeError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// Refrescar fuerza un ciclo de lectura inmediato de la hoja.
// POST /api/pedidos/refrescar
func (h *PedidosHandler) Refrescar(c *fiber.Ctx) error {
	if err := h.refrescador.Refrescar(c.Context()); err != nil {
		return respuestaDeError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// Exportar descarga los pedidos visibles como XLSX.
// GET /api/pedidos/exportar  (mismos filtros que Listar)
func (h *PedidosHandler) Exportar(c *fiber.Ctx) error {
	var req dto.FiltroRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "BAD_REQUEST", Message: err.Error(),
		})
	}

	buf, err := h.exportador.Generar(h.consulta.Exportables(req))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	nombre := fmt.Sprintf("pedidos-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, nombre))
	return c.Send(buf.Bytes())
}

// respuestaDeError traduce errores de dominio a códigos HTTP.
func respuestaDeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrClaveTotales):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: "CLAVE_INCORRECTA", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrCodigoFaltante):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "CODIGO_FALTANTE", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrGrupoNoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NO_ENCONTRADO", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrFuenteNoDisponible), errors.Is(err, domain.ErrActualizacionRechazada):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "REMOTO", Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
}

// urlParam devuelve el parámetro de ruta ya decodificado.
func urlParam(c *fiber.Ctx, nombre string) (string, error) {
	v, err := url.PathUnescape(c.Params(nombre))
	if err != nil || v == "" {
		return "", fmt.Errorf("parámetro %s vacío", nombre)
	}
	return v, nil
}
