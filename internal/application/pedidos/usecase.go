package pedidos

import (
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/application/dto"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/application/ports"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/domain"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/domain/entity"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/pkg/config"
)

// ConsultaUseCase deriva la vista de pedidos (filtrado + agrupación) del
// snapshot vigente. No muta nada: cada llamada recalcula desde cero, así que
// no hay estado derivado que pueda quedar obsoleto.
type ConsultaUseCase struct {
	repo         ports.RepositorioRegistros
	porDefecto   Opciones
	claveTotales string
}

// NewConsultaUseCase construye el caso de uso con las políticas por defecto
// de la configuración.
func NewConsultaUseCase(repo ports.RepositorioRegistros, cfg config.PedidosConfig) *ConsultaUseCase {
	return &ConsultaUseCase{
		repo: repo,
		porDefecto: Opciones{
			AgruparPor:    cfg.AgruparPor,
			PoliticaDeuda: cfg.PoliticaDeuda,
		},
		claveTotales: cfg.ClaveTotales,
	}
}

// resolverOpciones aplica overrides por petición sobre los valores por
// defecto, ignorando valores desconocidos.
func (uc *ConsultaUseCase) resolverOpciones(agruparPor, politicaDeuda string) Opciones {
	op := uc.porDefecto
	switch agruparPor {
	case config.AgruparPorCodigo, config.AgruparPorCliente:
		op.AgruparPor = agruparPor
	}
	switch politicaDeuda {
	case config.DeudaUltimaFila, config.DeudaSumaItems:
		op.PoliticaDeuda = politicaDeuda
	}
	return op
}

// Listar devuelve los grupos de pedido que pasan el filtro, ordenados por
// deuda descendente, junto con la marca de tiempo del snapshot.
func (uc *ConsultaUseCase) Listar(req dto.FiltroRequest) *dto.PedidosResponse {
	grupos := uc.agrupar(req)
	return &dto.PedidosResponse{
		Grupos:      grupos,
		Cantidad:    len(grupos),
		Actualizado: uc.repo.Actualizado(),
	}
}

// Totales calcula las sumas globales de los grupos visibles. La clave es la
// misma puerta cosmética del visualizador original: un string en texto plano,
// no un mecanismo de seguridad.
func (uc *ConsultaUseCase) Totales(req dto.FiltroRequest, clave string) (*dto.TotalesDTO, error) {
	if clave != uc.claveTotales {
		return nil, domain.ErrClaveTotales
	}

	grupos := uc.agrupar(req)
	t := &dto.TotalesDTO{Grupos: len(grupos)}
	for _, g := range grupos {
		t.CantidadTotal = t.CantidadTotal.Add(g.CantidadTotal)
		t.Total = t.Total.Add(g.Total)
		t.Debe = t.Debe.Add(g.Debe)
		t.Pago = t.Pago.Add(g.Pago)
	}
	return t, nil
}

// Exportables devuelve los grupos visibles para consumidores no HTTP
// (ej. el exportador XLSX).
func (uc *ConsultaUseCase) Exportables(req dto.FiltroRequest) []entity.GrupoPedido {
	return uc.agrupar(req)
}

func (uc *ConsultaUseCase) agrupar(req dto.FiltroRequest) []entity.GrupoPedido {
	filtrados := Filtrar(uc.repo.Snapshot(), req.AFiltro())
	return Agrupar(filtrados, uc.resolverOpciones(req.AgruparPor, req.PoliticaDeuda))
}
