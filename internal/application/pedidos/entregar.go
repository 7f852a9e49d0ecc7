package pedidos

import (
	"context"
	"fmt"
	"strings"

	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/application/ports"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/domain"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/domain/entity"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/domain/planilla"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/pkg/logger"
)

// EntregarUseCase marca un pedido como entregado contra el endpoint remoto y
// mantiene el snapshot local coherente con el resultado.
//
// Dos modos, como en el visualizador original:
//
//   - confirmado (por defecto): primero la confirmación del servidor, después
//     el cambio local.
//   - rápido: el cambio local se aplica de inmediato y se revierte al
//     snapshot previo si el servidor no confirma.
//
// Entre el cambio optimista y el siguiente ciclo de refresco hay una ventana
// (acotada por el intervalo de polling) en la que un tick puede pisar la
// edición en vuelo; gana la última escritura.
type EntregarUseCase struct {
	repo         ports.RepositorioRegistros
	actualizador ports.ActualizadorEstado
	log          *logger.Logger
}

// NewEntregarUseCase construye el caso de uso.
func NewEntregarUseCase(repo ports.RepositorioRegistros, actualizador ports.ActualizadorEstado, log *logger.Logger) *EntregarUseCase {
	return &EntregarUseCase{repo: repo, actualizador: actualizador, log: log.Componente("entregar")}
}

// MarcarEntregado cambia el estado del pedido identificado por su código
// único a "1: Entregado".
func (uc *EntregarUseCase) MarcarEntregado(ctx context.Context, codigo string, modoRapido bool) error {
	if strings.TrimSpace(codigo) == "" {
		return domain.ErrCodigoFaltante
	}

	previo := uc.repo.Snapshot()
	modificado, filas := marcarEnRegistros(previo, codigo)
	if filas == 0 {
		return fmt.Errorf("%w: código %q", domain.ErrGrupoNoEncontrado, codigo)
	}

	if modoRapido {
		// Optimista: el usuario ve el pedido entregado de inmediato.
		uc.repo.Reemplazar(modificado)
	}

	if err := uc.actualizador.ActualizarEstado(ctx, codigo, entity.EstadoEntregado); err != nil {
		if modoRapido {
			uc.repo.Reemplazar(previo)
			uc.log.Warn().Str("codigo", codigo).Err(err).
				Msg("actualización rechazada, snapshot local revertido")
		}
		return err
	}

	if !modoRapido {
		// Confirmado: se aplica recién con el OK del servidor, sobre el
		// snapshot vigente en ese momento.
		actual, _ := marcarEnRegistros(uc.repo.Snapshot(), codigo)
		uc.repo.Reemplazar(actual)
	}

	uc.log.Info().Str("codigo", codigo).Bool("modo_rapido", modoRapido).
		Int("filas", filas).Msg("pedido marcado como entregado")
	return nil
}

// marcarEnRegistros devuelve una copia del snapshot con el estado de todas
// las filas del pedido en "1: Entregado", junto con cuántas filas coinciden.
func marcarEnRegistros(regs []entity.Registro, codigo string) ([]entity.Registro, int) {
	objetivo := planilla.Normalizar(codigo)
	out := entity.ClonarRegistros(regs)
	n := 0
	for _, r := range out {
		if planilla.Normalizar(r[entity.ColCodigo]) == objetivo {
			r[entity.ColEstado] = entity.EstadoEntregado
			n++
		}
	}
	return out, n
}
