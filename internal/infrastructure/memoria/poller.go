package memoria

import (
	"context"
	"time"

	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/application/ports"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/pkg/logger"
)

var _ ports.Refrescador = (*Poller)(nil)

// Poller refresca el snapshot desde la fuente remota en un intervalo fijo.
// Ante una lectura fallida conserva el snapshot previo y solo deja registro
// en el log; el visualizador sigue mostrando los últimos datos buenos.
type Poller struct {
	fuente    ports.FuenteRegistros
	repo      ports.RepositorioRegistros
	intervalo time.Duration
	log       *logger.Logger
}

// NewPoller construye el poller.
func NewPoller(fuente ports.FuenteRegistros, repo ports.RepositorioRegistros, intervalo time.Duration, log *logger.Logger) *Poller {
	return &Poller{
		fuente:    fuente,
		repo:      repo,
		intervalo: intervalo,
		log:       log.Componente("poller"),
	}
}

// Ejecutar corre el ciclo de refresco hasta que el contexto se cancele.
// Hace una lectura inicial inmediata y luego una por tick. Cada tick lanza
// una petición independiente: una lectura colgada no bloquea los ticks
// siguientes.
func (p *Poller) Ejecutar(ctx context.Context) {
	p.refrescarConLog(ctx)

	ticker := time.NewTicker(p.intervalo)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Info().Msg("poller detenido")
			return
		case <-ticker.C:
			go p.refrescarConLog(ctx)
		}
	}
}

// Refrescar ejecuta un ciclo de lectura inmediato. Implementa el puerto
// usado por POST /api/pedidos/refrescar.
func (p *Poller) Refrescar(ctx context.Context) error {
	regs, err := p.fuente.Leer(ctx)
	if err != nil {
		return err
	}
	p.repo.Reemplazar(regs)
	return nil
}

func (p *Poller) refrescarConLog(ctx context.Context) {
	inicio := time.Now()
	regs, err := p.fuente.Leer(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return // apagado en curso, no es una falla de la fuente
		}
		p.log.Warn().Err(err).Msg("lectura de la hoja fallida, se conserva el snapshot previo")
		return
	}
	if ctx.Err() != nil {
		return // resultado llegó después del apagado, no tocar el snapshot
	}
	p.repo.Reemplazar(regs)
	p.log.Debug().Int("registros", len(regs)).Dur("duracion", time.Since(inicio)).
		Msg("snapshot actualizado")
}
