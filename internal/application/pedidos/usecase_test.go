package pedidos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/application/dto"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/application/pedidos"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/domain"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/pkg/config"
)

func configDePedidos() config.PedidosConfig {
	return config.PedidosConfig{
		AgruparPor:    config.AgruparPorCodigo,
		PoliticaDeuda: config.DeudaUltimaFila,
		ClaveTotales:  "2727",
	}
}

func TestListar_FiltraYAgrupa(t *testing.T) {
	repo := nuevoRepoFake(
		filaPedido("P-001", "Rosa", "Miel", "1", "30", "50", "20", "0: Por Entregar"),
		filaPedido("P-002", "Juan", "Pan", "1", "20", "0", "0", "1: Entregado"),
	)
	uc := pedidos.NewConsultaUseCase(repo, configDePedidos())

	resp := uc.Listar(dto.FiltroRequest{Estado: "Entregado"})

	require.Equal(t, 1, resp.Cantidad)
	assert.Equal(t, "P-002", resp.Grupos[0].CodigoUnico)
}

func TestTotales_ExigeClave(t *testing.T) {
	repo := nuevoRepoFake(
		filaPedido("P-001", "Rosa", "Miel", "2", "30", "50", "20", "0: Por Entregar"),
		filaPedido("P-002", "Juan", "Pan", "3", "20", "10", "5", "1: Entregado"),
	)
	uc := pedidos.NewConsultaUseCase(repo, configDePedidos())

	_, err := uc.Totales(dto.FiltroRequest{}, "incorrecta")
	assert.ErrorIs(t, err, domain.ErrClaveTotales)

	tot, err := uc.Totales(dto.FiltroRequest{}, "2727")
	require.NoError(t, err)
	assert.Equal(t, 2, tot.Grupos)
	eq(t, "50", tot.Total, "Total global")
	eq(t, "60", tot.Debe, "Debe global")
	eq(t, "25", tot.Pago, "Pago global")
	eq(t, "5", tot.CantidadTotal, "Cantidad global")
}

// Los overrides por petición solo se aceptan si nombran una política válida.
func TestListar_OverrideDePoliticas(t *testing.T) {
	repo := nuevoRepoFake(
		filaPedido("P-001", "Rosa", "Miel", "1", "10", "0", "0", ""),
		filaPedido("P-002", "Rosa", "Pan", "1", "15", "0", "0", ""),
	)
	uc := pedidos.NewConsultaUseCase(repo, configDePedidos())

	resp := uc.Listar(dto.FiltroRequest{AgruparPor: config.AgruparPorCliente})
	assert.Equal(t, 1, resp.Cantidad, "override a agrupación por cliente junta los pedidos de Rosa")

	resp = uc.Listar(dto.FiltroRequest{AgruparPor: "cualquier-cosa"})
	assert.Equal(t, 2, resp.Cantidad, "un override desconocido se ignora y rige el default")
}
