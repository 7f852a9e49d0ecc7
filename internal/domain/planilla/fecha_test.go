package planilla_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/domain/planilla"
)

func TestParseFecha_DiaPrimero(t *testing.T) {
	f, ok := planilla.ParseFecha("05/03/2024")
	require.True(t, ok, "05/03/2024 debe ser una fecha válida")
	assert.Equal(t, 5, f.Day(), "el primer campo es el día, no el mes")
	assert.Equal(t, time.March, f.Month())
	assert.Equal(t, 2024, f.Year())
}

func TestParseFecha_GuionesYAnioCorto(t *testing.T) {
	// La regla de año corto siempre suma 2000: "99" es 2099, no 1999.
	f, ok := planilla.ParseFecha("31-12-99")
	require.True(t, ok)
	assert.Equal(t, 2099, f.Year(), "año de 2 dígitos se asume en los 2000")
	assert.Equal(t, time.December, f.Month())
	assert.Equal(t, 31, f.Day())
}

func TestParseFecha_FormatoISO(t *testing.T) {
	f, ok := planilla.ParseFecha("2024-03-05")
	require.True(t, ok, "el formato ISO entra por los layouts de respaldo")
	assert.Equal(t, time.March, f.Month())
	assert.Equal(t, 5, f.Day())
}

func TestParseFecha_EntradaInvalida(t *testing.T) {
	for _, celda := range []string{"", "mañana", "32/13/2024x", "//"} {
		_, ok := planilla.ParseFecha(celda)
		assert.False(t, ok, "ParseFecha(%q) no debe reconocer fecha", celda)
	}
}

func TestInicioYFinDelDia(t *testing.T) {
	f, _ := planilla.ParseFecha("15/06/2025")

	ini := planilla.InicioDelDia(f)
	fin := planilla.FinDelDia(f)

	assert.Equal(t, 0, ini.Hour())
	assert.Equal(t, 23, fin.Hour())
	assert.True(t, fin.After(ini))
	assert.Equal(t, ini.Day(), fin.Day(), "inicio y fin pertenecen al mismo día calendario")
}
