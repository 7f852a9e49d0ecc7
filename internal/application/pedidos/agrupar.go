package pedidos

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/domain/entity"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/domain/planilla"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/pkg/config"
)

// Opciones políticas del agregador. Los valores válidos están en pkg/config.
type Opciones struct {
	AgruparPor    string // clave de grupo: código de pedido o cliente
	PoliticaDeuda string // cómo derivar Debe/Pago del grupo
}

// NuevoItem interpreta una fila cruda como línea de pedido.
func NuevoItem(r entity.Registro) entity.ItemPedido {
	return entity.ItemPedido{
		Codigo:       r[entity.ColCodigo],
		Producto:     r[entity.ColProducto],
		Unidad:       r[entity.ColUnidad],
		Cantidad:     planilla.ParseNumero(r[entity.ColCantidad]),
		MontoDesc:    planilla.ParseNumero(r[entity.ColMontoDesc]),
		DebeFila:     planilla.ParseNumero(r[entity.ColDebe]),
		PagoFila:     planilla.ParseNumero(r[entity.ColPago]),
		Estado:       r[entity.ColEstado],
		FechaEntrega: r[entity.ColFechaEntrega],
	}
}

// Agrupar acumula los registros filtrados en grupos de pedido y los ordena
// por deuda descendente (orden estable). Es una función pura: el mismo input
// produce siempre los mismos grupos en el mismo orden.
func Agrupar(regs []entity.Registro, op Opciones) []entity.GrupoPedido {
	acumulador := make(map[string]*entity.GrupoPedido)
	var orden []string // orden de primera aparición, base del sort estable

	for _, r := range regs {
		item := NuevoItem(r)
		clave := claveDeGrupo(r, op.AgruparPor)

		g, visto := acumulador[clave]
		if !visto {
			g = &entity.GrupoPedido{
				Clave:           clave,
				CodigoUnico:     strings.TrimSpace(r[entity.ColCodigo]),
				Cliente:         nombreCliente(r),
				Direccion:       r[entity.ColDireccion],
				Mapa:            r[entity.ColMapa],
				Celular:         r[entity.ColCelular],
				TodosEntregados: true,
			}
			acumulador[clave] = g
			orden = append(orden, clave)
		}

		g.Items = append(g.Items, item)
		g.Total = g.Total.Add(item.MontoDesc)
		g.CantidadTotal = g.CantidadTotal.Add(item.Cantidad)
		acumularDeuda(g, item, op.PoliticaDeuda)

		if !item.Entregado() {
			g.TodosEntregados = false
		}
	}

	grupos := make([]entity.GrupoPedido, 0, len(orden))
	for _, clave := range orden {
		grupos = append(grupos, *acumulador[clave])
	}
	sort.SliceStable(grupos, func(i, j int) bool {
		return grupos[i].Debe.GreaterThan(grupos[j].Debe)
	})
	return grupos
}

// claveDeGrupo resuelve la clave según la política: por código de pedido
// (con cliente como respaldo) o directamente por cliente.
func claveDeGrupo(r entity.Registro, agruparPor string) string {
	if agruparPor == config.AgruparPorCliente {
		return nombreCliente(r)
	}
	if codigo := strings.TrimSpace(r[entity.ColCodigo]); codigo != "" {
		return codigo
	}
	return nombreCliente(r)
}

func nombreCliente(r entity.Registro) string {
	if cliente := strings.TrimSpace(r[entity.ColCliente]); cliente != "" {
		return cliente
	}
	return entity.ClienteSinNombre
}

// acumularDeuda aplica la política de deuda/pago del grupo:
//
//   - ultima_fila: la hoja lleva Debe/Pago del pedido completo en una sola
//     fila (normalmente la primera); gana la última fila con valores no cero.
//   - suma_items: Debe se suma por ítem y Pago se deriva como
//     max(0, monto - debe) de cada ítem.
func acumularDeuda(g *entity.GrupoPedido, item entity.ItemPedido, politica string) {
	if politica == config.DeudaSumaItems {
		g.Debe = g.Debe.Add(item.DebeFila)
		pagoItem := item.MontoDesc.Sub(item.DebeFila)
		if pagoItem.IsNegative() {
			pagoItem = decimal.Zero
		}
		g.Pago = g.Pago.Add(pagoItem)
		return
	}
	if !item.DebeFila.IsZero() || !item.PagoFila.IsZero() {
		g.Debe = item.DebeFila
		g.Pago = item.PagoFila
	}
}
