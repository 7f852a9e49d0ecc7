package excel_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/domain/entity"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/infrastructure/excel"
)

func TestGenerar_UnaFilaPorItemMasTotales(t *testing.T) {
	grupos := []entity.GrupoPedido{
		{
			Clave:       "P-001",
			CodigoUnico: "P-001",
			Cliente:     "Rosa",
			Direccion:   "Av. Siempre Viva 123",
			Items: []entity.ItemPedido{
				{Producto: "Miel", Unidad: "frasco", Cantidad: decimal.NewFromInt(2), MontoDesc: decimal.NewFromInt(30), Estado: "1: Entregado"},
				{Producto: "Pan", Unidad: "bolsa", Cantidad: decimal.NewFromInt(1), MontoDesc: decimal.NewFromInt(20), Estado: "0: Por Entregar"},
			},
			Total:           decimal.NewFromInt(50),
			Debe:            decimal.NewFromInt(50),
			CantidadTotal:   decimal.NewFromInt(3),
			TodosEntregados: false,
		},
	}

	buf, err := excel.NewExportador().Generar(grupos)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err, "el buffer debe ser un XLSX válido")
	defer f.Close()

	filas, err := f.GetRows("Pedidos")
	require.NoError(t, err)
	// encabezado + 2 ítems + fila en blanco + totales
	require.Len(t, filas, 5)

	assert.Equal(t, "Pedido", filas[0][0])
	assert.Equal(t, "Rosa", filas[1][1])
	assert.Equal(t, "Miel", filas[1][4])
	assert.Equal(t, "Pan", filas[2][4])
	assert.Equal(t, "No", filas[1][11], "el grupo tiene un ítem pendiente")
	assert.Contains(t, filas[4][0], "TOTALES (1 pedidos)")
}

func TestGenerar_SinGrupos(t *testing.T) {
	buf, err := excel.NewExportador().Generar(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	filas, err := f.GetRows("Pedidos")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(filas), 1, "al menos el encabezado y los totales en cero")
}
