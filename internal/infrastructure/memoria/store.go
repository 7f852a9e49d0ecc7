// Package memoria guarda el snapshot vigente de la hoja y lo refresca
// periódicamente. No hay persistencia: la hoja remota es la fuente de verdad
// y cada ciclo la re-ingesta completa.
package memoria

import (
	"sync"
	"time"

	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/application/ports"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/domain/entity"
)

// Verificar en tiempo de compilación que Store implementa el puerto.
var _ ports.RepositorioRegistros = (*Store)(nil)

// Store snapshot de registros protegido por RWMutex. El poller lo reemplaza
// completo; los casos de uso leen copias.
type Store struct {
	mu          sync.RWMutex
	regs        []entity.Registro
	actualizado time.Time
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{}
}

// Snapshot devuelve una copia independiente de los registros vigentes.
func (s *Store) Snapshot() []entity.Registro {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return entity.ClonarRegistros(s.regs)
}

// Reemplazar sustituye el snapshot completo. Lo llaman tanto el poller (con
// datos frescos de la hoja) como el caso de uso de entrega (cambio optimista
// y su rollback); gana la última escritura.
func (s *Store) Reemplazar(regs []entity.Registro) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regs = entity.ClonarRegistros(regs)
	s.actualizado = time.Now()
}

// Actualizado devuelve cuándo cambió el snapshot por última vez.
func (s *Store) Actualizado() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.actualizado
}
