// Package pedidos implementa los casos de uso del visualizador: filtrado,
// agregación por pedido, totales y marcado de entrega.
package pedidos

import (
	"sort"
	"strings"

	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/domain/entity"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/domain/planilla"
)

// Filtrar aplica los cuatro predicados (texto, rango de fechas, estado y
// cierre) sobre los registros crudos, preservando el orden de entrada.
func Filtrar(regs []entity.Registro, f entity.FiltroPedidos) []entity.Registro {
	out := make([]entity.Registro, 0, len(regs))
	for _, r := range regs {
		if pasaTexto(r, f.Texto) && pasaFecha(r, f) && pasaEstado(r, f.Estado) && pasaCierre(r, f.Cierre) {
			out = append(out, r)
		}
	}
	return out
}

// pasaTexto busca la consulta como subcadena en la concatenación de todos
// los valores de la fila, insensible a mayúsculas y tildes.
func pasaTexto(r entity.Registro, consulta string) bool {
	q := planilla.Normalizar(consulta)
	if q == "" {
		return true
	}

	// Orden estable de columnas para que el resultado no dependa del
	// recorrido del map.
	cols := make([]string, 0, len(r))
	for c := range r {
		cols = append(cols, c)
	}
	sort.Strings(cols)

	var b strings.Builder
	for _, c := range cols {
		b.WriteString(r[c])
		b.WriteByte(' ')
	}
	return strings.Contains(planilla.Normalizar(b.String()), q)
}

// pasaFecha compara la fecha de entrega contra los límites activos. Una fila
// sin fecha interpretable falla cualquier límite activo.
func pasaFecha(r entity.Registro, f entity.FiltroPedidos) bool {
	if f.Desde == nil && f.Hasta == nil {
		return true
	}
	d, ok := planilla.ParseFecha(r[entity.ColFechaEntrega])
	if !ok {
		return false
	}
	if f.Desde != nil && d.Before(planilla.InicioDelDia(*f.Desde)) {
		return false
	}
	if f.Hasta != nil && d.After(planilla.FinDelDia(*f.Hasta)) {
		return false
	}
	return true
}

// pasaEstado mapea los prefijos de la hoja ("1..." entregado, "0..." por
// entregar) a una categoría y la compara con el selector por subcadena.
func pasaEstado(r entity.Registro, selector string) bool {
	if selector == "" || selector == entity.FiltroTodos {
		return true
	}
	est := planilla.Normalizar(r[entity.ColEstado])
	categoria := est
	switch {
	case strings.HasPrefix(est, entity.PrefijoEntregado):
		categoria = "entregado"
	case strings.HasPrefix(est, entity.PrefijoPendiente):
		categoria = "por entregar"
	}
	return strings.Contains(categoria, planilla.Normalizar(selector))
}

// pasaCierre: "Cancelado" exige exactamente "cancelado"; "Activo" acepta
// vacío o "activo"; cualquier otro selector deja pasar todo.
func pasaCierre(r entity.Registro, selector string) bool {
	ci := planilla.Normalizar(r[entity.ColCierre])
	switch selector {
	case entity.FiltroCancelado:
		return ci == entity.CierreCancelado
	case entity.FiltroActivo:
		return ci == "" || ci == entity.CierreActivo
	default:
		return true
	}
}
