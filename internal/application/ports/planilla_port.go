// Package ports define los puertos de salida de la capa de aplicación.
// Las implementaciones viven en internal/infrastructure.
package ports

import (
	"context"
	"time"

	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/domain/entity"
)

// FuenteRegistros lee el estado completo de la hoja remota (export CSV).
type FuenteRegistros interface {
	Leer(ctx context.Context) ([]entity.Registro, error)
}

// ActualizadorEstado envía el cambio de estado de un pedido al endpoint de
// mutación remoto. Un error incluye tanto fallas de red como respuestas que
// el servidor no confirmó (ok != true).
type ActualizadorEstado interface {
	ActualizarEstado(ctx context.Context, pedidoID, nuevoEstado string) error
}

// RepositorioRegistros guarda el snapshot vigente de la hoja. Cada ciclo de
// refresco reemplaza el snapshot completo; no hay merge incremental.
type RepositorioRegistros interface {
	Snapshot() []entity.Registro
	Reemplazar(regs []entity.Registro)
	Actualizado() time.Time
}

// Refrescador dispara un ciclo de lectura inmediato fuera del timer.
type Refrescador interface {
	Refrescar(ctx context.Context) error
}
