// Package dto define los cuerpos de petición y respuesta de la API.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/domain/entity"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/domain/planilla"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FiltroRequest parámetros de query de los listados de pedidos.
// Desde/Hasta aceptan los mismos formatos de fecha que la hoja (D/M/A o ISO).
type FiltroRequest struct {
	Q      string `query:"q"`
	Estado string `query:"estado"`
	Cierre string `query:"cierre"`
	Desde  string `query:"desde"`
	Hasta  string `query:"hasta"`

	// Overrides opcionales de las políticas configuradas.
	AgruparPor    string `query:"agrupar_por"`
	PoliticaDeuda string `query:"politica_deuda"`
}

// AFiltro convierte la petición en criterios de dominio. Selectores vacíos
// pasan a "Todos" y las fechas no interpretables simplemente no filtran.
func (r FiltroRequest) AFiltro() entity.FiltroPedidos {
	f := entity.FiltroPedidos{
		Texto:  r.Q,
		Estado: r.Estado,
		Cierre: r.Cierre,
	}
	if f.Estado == "" {
		f.Estado = entity.FiltroTodos
	}
	if f.Cierre == "" {
		f.Cierre = entity.FiltroTodos
	}
	if t, ok := planilla.ParseFecha(r.Desde); ok {
		f.Desde = &t
	}
	if t, ok := planilla.ParseFecha(r.Hasta); ok {
		f.Hasta = &t
	}
	return f
}

// PedidosResponse respuesta de GET /api/pedidos.
type PedidosResponse struct {
	Grupos      []entity.GrupoPedido `json:"grupos"`
	Cantidad    int                  `json:"cantidad"`
	Actualizado time.Time            `json:"actualizado"`
}

// TotalesDTO respuesta de GET /api/pedidos/totales (protegida por clave).
type TotalesDTO struct {
	Grupos        int             `json:"grupos"`
	CantidadTotal decimal.Decimal `json:"cantidad_total"`
	Total         decimal.Decimal `json:"total"`
	Debe          decimal.Decimal `json:"debe"`
	Pago          decimal.Decimal `json:"pago"`
}

// EntregarRequest cuerpo de POST /api/pedidos/:codigo/entregar.
type EntregarRequest struct {
	// ModoRapido aplica el cambio local antes de la confirmación del
	// servidor y lo revierte si la actualización falla.
	ModoRapido bool `json:"modo_rapido"`
}

// OKResponse respuesta genérica de mutaciones.
type OKResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}
