// Package excel genera el archivo XLSX con los pedidos visibles, para
// repartidores que trabajan sin conexión o para archivo del día.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/domain/entity"
)

const hojaPedidos = "Pedidos"

var encabezado = []string{
	"Pedido", "Cliente", "Dirección", "Celular", "Producto", "Unidad",
	"Cantidad", "Monto c/Desc.", "Debe", "Pago", "Estado", "Entregado",
}

// Exportador escribe grupos de pedido en una hoja XLSX: una fila por ítem,
// con los datos del grupo repetidos, y una fila final de totales.
type Exportador struct{}

// NewExportador construye el exportador.
func NewExportador() *Exportador {
	return &Exportador{}
}

// Generar produce el XLSX en memoria. Los grupos llegan ya filtrados y
// ordenados por el agregador.
func (e *Exportador) Generar(grupos []entity.GrupoPedido) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", hojaPedidos); err != nil {
		return nil, fmt.Errorf("exportar pedidos: %w", err)
	}

	if err := escribirFila(f, 1, filaDeEncabezado()); err != nil {
		return nil, err
	}

	filaNum := 2
	for _, g := range grupos {
		for _, item := range g.Items {
			valores := []any{
				g.CodigoUnico,
				g.Cliente,
				g.Direccion,
				g.Celular,
				item.Producto,
				item.Unidad,
				item.Cantidad.InexactFloat64(),
				item.MontoDesc.InexactFloat64(),
				g.Debe.InexactFloat64(),
				g.Pago.InexactFloat64(),
				item.Estado,
				marcaEntregado(g.TodosEntregados),
			}
			if err := escribirFila(f, filaNum, valores); err != nil {
				return nil, err
			}
			filaNum++
		}
	}

	if err := escribirFila(f, filaNum+1, filaDeTotales(grupos)); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("exportar pedidos: %w", err)
	}
	return buf, nil
}

func filaDeEncabezado() []any {
	out := make([]any, len(encabezado))
	for i, h := range encabezado {
		out[i] = h
	}
	return out
}

func filaDeTotales(grupos []entity.GrupoPedido) []any {
	var total, debe, pago, cantidad float64
	for _, g := range grupos {
		total += g.Total.InexactFloat64()
		debe += g.Debe.InexactFloat64()
		pago += g.Pago.InexactFloat64()
		cantidad += g.CantidadTotal.InexactFloat64()
	}
	return []any{
		fmt.Sprintf("TOTALES (%d pedidos)", len(grupos)),
		"", "", "", "", "", cantidad, total, debe, pago, "", "",
	}
}

func escribirFila(f *excelize.File, fila int, valores []any) error {
	celda, err := excelize.CoordinatesToCellName(1, fila)
	if err != nil {
		return fmt.Errorf("exportar pedidos: %w", err)
	}
	if err := f.SetSheetRow(hojaPedidos, celda, &valores); err != nil {
		return fmt.Errorf("exportar pedidos: %w", err)
	}
	return nil
}

func marcaEntregado(todos bool) string {
	if todos {
		return "Sí"
	}
	return "No"
}
