package pedidos_test

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/application/pedidos"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/domain/entity"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/pkg/config"
)

var opPorDefecto = pedidos.Opciones{
	AgruparPor:    config.AgruparPorCodigo,
	PoliticaDeuda: config.DeudaUltimaFila,
}

func filaPedido(codigo, cliente, producto, cantidad, monto, debe, pago, estado string) entity.Registro {
	return entity.Registro{
		entity.ColCodigo:    codigo,
		entity.ColCliente:   cliente,
		entity.ColProducto:  producto,
		entity.ColCantidad:  cantidad,
		entity.ColMontoDesc: monto,
		entity.ColDebe:      debe,
		entity.ColPago:      pago,
		entity.ColEstado:    estado,
	}
}

func eq(t *testing.T, esperado string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(esperado)),
		"%s: se esperaba %s, fue %s", msg, esperado, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Agrupación y totales
// ──────────────────────────────────────────────────────────────────────────────

func TestAgrupar_TotalesDelGrupo(t *testing.T) {
	regs := []entity.Registro{
		filaPedido("P-001", "Rosa", "Miel", "2", "30", "0", "0", "0: Por Entregar"),
		filaPedido("P-001", "Rosa", "Tortillas", "3", "20", "0", "0", "0: Por Entregar"),
	}

	grupos := pedidos.Agrupar(regs, opPorDefecto)

	require.Len(t, grupos, 1)
	g := grupos[0]
	assert.Equal(t, "P-001", g.CodigoUnico)
	assert.Equal(t, "Rosa", g.Cliente)
	require.Len(t, g.Items, 2)
	eq(t, "50", g.Total, "Total es la suma de los montos")
	eq(t, "5", g.CantidadTotal, "CantidadTotal es la suma de cantidades")
}

// Política ultima_fila: la hoja lleva Debe/Pago del pedido en una sola fila;
// gana la última no nula sin importar dónde esté.
func TestAgrupar_PoliticaUltimaFila(t *testing.T) {
	filas := []entity.Registro{
		filaPedido("P-001", "Rosa", "Miel", "1", "30", "0", "0", "0: Por Entregar"),
		filaPedido("P-001", "Rosa", "Pan", "1", "20", "50", "20", "0: Por Entregar"),
		filaPedido("P-001", "Rosa", "Queso", "1", "10", "0", "0", "0: Por Entregar"),
	}

	// El resultado no depende de dónde caiga la fila con valores.
	ordenes := [][]int{{0, 1, 2}, {1, 0, 2}, {2, 0, 1}}
	for _, orden := range ordenes {
		regs := make([]entity.Registro, len(orden))
		for i, idx := range orden {
			regs[i] = filas[idx]
		}

		grupos := pedidos.Agrupar(regs, opPorDefecto)
		require.Len(t, grupos, 1)
		eq(t, "50", grupos[0].Debe, "Debe viene de la única fila con valores")
		eq(t, "20", grupos[0].Pago, "Pago viene de la única fila con valores")
	}
}

// Política suma_items: Debe se acumula por fila y Pago se deriva por ítem
// como max(0, monto - debe).
func TestAgrupar_PoliticaSumaItems(t *testing.T) {
	regs := []entity.Registro{
		filaPedido("P-001", "Rosa", "Miel", "1", "30", "10", "0", "0: Por Entregar"),
		filaPedido("P-001", "Rosa", "Pan", "1", "20", "25", "0", "0: Por Entregar"),
	}

	op := opPorDefecto
	op.PoliticaDeuda = config.DeudaSumaItems
	grupos := pedidos.Agrupar(regs, op)

	require.Len(t, grupos, 1)
	eq(t, "35", grupos[0].Debe, "Debe es la suma por ítem")
	// 30-10=20 y max(0, 20-25)=0
	eq(t, "20", grupos[0].Pago, "Pago por ítem nunca es negativo")
}

// ──────────────────────────────────────────────────────────────────────────────
// TodosEntregados
// ──────────────────────────────────────────────────────────────────────────────

func TestAgrupar_TodosEntregados(t *testing.T) {
	mixto := []entity.Registro{
		filaPedido("P-001", "Rosa", "Miel", "1", "30", "0", "0", "1: Entregado"),
		filaPedido("P-001", "Rosa", "Pan", "1", "20", "0", "0", "0: Pendiente"),
	}
	grupos := pedidos.Agrupar(mixto, opPorDefecto)
	require.Len(t, grupos, 1)
	assert.False(t, grupos[0].TodosEntregados,
		"con un ítem pendiente el grupo no está entregado")

	completo := []entity.Registro{
		filaPedido("P-001", "Rosa", "Miel", "1", "30", "0", "0", "1: Entregado"),
		filaPedido("P-001", "Rosa", "Pan", "1", "20", "0", "0", "1: Entregado"),
	}
	grupos = pedidos.Agrupar(completo, opPorDefecto)
	assert.True(t, grupos[0].TodosEntregados,
		"todos los estados con prefijo 1 marcan el grupo entregado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Clave de grupo
// ──────────────────────────────────────────────────────────────────────────────

func TestAgrupar_ClavePorCodigoConRespaldos(t *testing.T) {
	regs := []entity.Registro{
		filaPedido("P-001", "Rosa", "Miel", "1", "10", "0", "0", ""),
		filaPedido("", "Juan", "Pan", "1", "10", "0", "0", ""),
		filaPedido("", "", "Queso", "1", "10", "0", "0", ""),
	}

	grupos := pedidos.Agrupar(regs, opPorDefecto)

	require.Len(t, grupos, 3)
	claves := make([]string, len(grupos))
	for i, g := range grupos {
		claves[i] = g.Clave
	}
	assert.Contains(t, claves, "P-001")
	assert.Contains(t, claves, "Juan", "sin código la clave cae al cliente")
	assert.Contains(t, claves, entity.ClienteSinNombre, "sin código ni cliente se usa el centinela")
}

func TestAgrupar_ClavePorClienteJuntaPedidos(t *testing.T) {
	regs := []entity.Registro{
		filaPedido("P-001", "Rosa", "Miel", "1", "10", "0", "0", ""),
		filaPedido("P-002", "Rosa", "Pan", "1", "15", "0", "0", ""),
	}

	op := opPorDefecto
	op.AgruparPor = config.AgruparPorCliente
	grupos := pedidos.Agrupar(regs, op)

	require.Len(t, grupos, 1, "agrupando por cliente, dos pedidos de Rosa son una tarjeta")
	eq(t, "25", grupos[0].Total, "el total junta ambos pedidos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden y determinismo
// ──────────────────────────────────────────────────────────────────────────────

func TestAgrupar_OrdenPorDeudaDescendente(t *testing.T) {
	regs := []entity.Registro{
		filaPedido("P-001", "Rosa", "Miel", "1", "10", "5", "0", ""),
		filaPedido("P-002", "Juan", "Pan", "1", "10", "80", "0", ""),
		filaPedido("P-003", "Ana", "Queso", "1", "10", "30", "0", ""),
	}

	grupos := pedidos.Agrupar(regs, opPorDefecto)

	require.Len(t, grupos, 3)
	assert.Equal(t, "P-002", grupos[0].CodigoUnico)
	assert.Equal(t, "P-003", grupos[1].CodigoUnico)
	assert.Equal(t, "P-001", grupos[2].CodigoUnico)
}

func TestAgrupar_EmpatesConservanOrdenDeLlegada(t *testing.T) {
	regs := []entity.Registro{
		filaPedido("P-001", "Rosa", "Miel", "1", "10", "30", "0", ""),
		filaPedido("P-002", "Juan", "Pan", "1", "10", "30", "0", ""),
	}

	grupos := pedidos.Agrupar(regs, opPorDefecto)

	require.Len(t, grupos, 2)
	assert.Equal(t, "P-001", grupos[0].CodigoUnico, "a igual deuda manda la primera aparición")
	assert.Equal(t, "P-002", grupos[1].CodigoUnico)
}

func TestAgrupar_Determinista(t *testing.T) {
	regs := []entity.Registro{
		filaPedido("P-001", "Rosa", "Miel", "2", "1.234,56", "50", "20", "1: Entregado"),
		filaPedido("P-002", "Juan", "Pan", "1", "100", "0", "0", "0: Pendiente"),
		filaPedido("P-001", "Rosa", "Queso", "1", "10", "0", "0", "1: Entregado"),
	}

	a := pedidos.Agrupar(regs, opPorDefecto)
	b := pedidos.Agrupar(regs, opPorDefecto)

	assert.True(t, reflect.DeepEqual(a, b),
		"el mismo input debe producir grupos y orden idénticos")
}
