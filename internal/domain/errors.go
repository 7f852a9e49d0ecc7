// Package domain expone los errores de dominio del visualizador.
package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrGrupoNoEncontrado = errors.New("pedido no encontrado en el snapshot actual")
	ErrCodigoFaltante    = errors.New("el grupo no tiene código de pedido único")
	ErrClaveTotales      = errors.New("clave de totales incorrecta")
	ErrFuenteNoDisponible = errors.New("no se pudo leer la hoja de cálculo")
	ErrActualizacionRechazada = errors.New("el servidor rechazó la actualización de estado")
)
