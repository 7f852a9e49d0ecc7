// Package entity define el modelo de dominio del visualizador de pedidos.
//
// La fuente de verdad es una hoja de cálculo publicada como CSV: cada fila es
// un Registro crudo y de ellos se derivan, en cada ciclo de refresco, los
// ItemPedido y GrupoPedido. Nada de esto se persiste localmente.
package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Nombres exactos de columna en la hoja "Pedidos_Auto". Deben coincidir con
// el encabezado del CSV exportado; una columna renombrada en la hoja rompe la
// lectura de ese campo (y degrada a vacío/cero, nunca a error).
const (
	ColCodigo       = "Código"
	ColCliente      = "Cliente"
	ColProducto     = "Producto"
	ColUnidad       = "Unidad"
	ColCantidad     = "Cantidad"
	ColMontoDesc    = "Monto c/Desc."
	ColPago         = "Pago"
	ColDebe         = "Debe"
	ColEstado       = "Estado"
	ColCierre       = "Cierre"
	ColFechaEntrega = "Fecha Entrega"
	ColDireccion    = "Dirección"
	ColMapa         = "Mapa"
	ColCelular      = "Celular"
)

// Valores de estado y cierre tal como viven en la hoja.
const (
	EstadoEntregado = "1: Entregado"

	// Prefijos del campo Estado: "1..." entregado, "0..." por entregar.
	PrefijoEntregado = "1"
	PrefijoPendiente = "0"

	CierreCancelado = "cancelado"
	CierreActivo    = "activo"
)

// ClienteSinNombre clave de grupo cuando la fila no trae código ni cliente.
const ClienteSinNombre = "(Sin nombre)"

// Registro es una fila cruda del CSV: columna -> valor textual sin interpretar.
type Registro map[string]string

// Clon devuelve una copia independiente del registro.
func (r Registro) Clon() Registro {
	c := make(Registro, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// ClonarRegistros copia profunda de un snapshot completo.
func ClonarRegistros(regs []Registro) []Registro {
	out := make([]Registro, len(regs))
	for i, r := range regs {
		out[i] = r.Clon()
	}
	return out
}

// ItemPedido es una fila ya interpretada (una línea de producto de un pedido).
type ItemPedido struct {
	Codigo       string          `json:"codigo"`
	Producto     string          `json:"producto"`
	Unidad       string          `json:"unidad"`
	Cantidad     decimal.Decimal `json:"cantidad"`
	MontoDesc    decimal.Decimal `json:"monto_desc"`
	DebeFila     decimal.Decimal `json:"debe_fila"`
	PagoFila     decimal.Decimal `json:"pago_fila"`
	Estado       string          `json:"estado"`
	FechaEntrega string          `json:"fecha_entrega"`
}

// Entregado indica si el estado de la fila marca el ítem como entregado.
func (i ItemPedido) Entregado() bool {
	return strings.HasPrefix(strings.TrimSpace(i.Estado), PrefijoEntregado)
}

// GrupoPedido agrupa los ítems de un mismo pedido (o de un mismo cliente,
// según la política de agrupación) con sus totales derivados.
type GrupoPedido struct {
	Clave           string          `json:"clave"`
	CodigoUnico     string          `json:"codigo_unico"`
	Cliente         string          `json:"cliente"`
	Direccion       string          `json:"direccion"`
	Mapa            string          `json:"mapa"`
	Celular         string          `json:"celular"`
	Items           []ItemPedido    `json:"items"`
	Total           decimal.Decimal `json:"total"`
	Debe            decimal.Decimal `json:"debe"`
	Pago            decimal.Decimal `json:"pago"`
	CantidadTotal   decimal.Decimal `json:"cantidad_total"`
	TodosEntregados bool            `json:"todos_entregados"`
}

// FiltroPedidos criterios transitorios controlados por el usuario.
// Los campos en cero/nil no filtran.
type FiltroPedidos struct {
	Texto  string     // subcadena, insensible a mayúsculas y tildes
	Estado string     // "Todos" | "Por Entregar" | "Entregado"
	Cierre string     // "Todos" | "Activo" | "Cancelado"
	Desde  *time.Time // inclusive, inicio del día
	Hasta  *time.Time // inclusive, fin del día
}

// Selectores reconocidos por los filtros de estado y cierre.
const (
	FiltroTodos     = "Todos"
	FiltroEntregado = "Entregado"
	FiltroPendiente = "Por Entregar"
	FiltroActivo    = "Activo"
	FiltroCancelado = "Cancelado"
)
