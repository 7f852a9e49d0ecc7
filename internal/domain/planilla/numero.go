// Package planilla contiene el parsing puro de la hoja de cálculo: números
// con separadores latinoamericanos, fechas día-primero, CSV exportado por
// Google Sheets y normalización de texto para comparaciones.
//
// Todas las funciones degradan a un valor por defecto ante entrada
// malformada; ninguna retorna error. La hoja la editan humanos y el
// visualizador debe mostrar siempre el mejor resultado posible.
package planilla

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// La hoja mezcla convenciones de formato numérico de manera inconsistente:
// "1.234,56" (miles con punto, decimal con coma), "1234,56", "1234.56" y
// "1.234" (solo miles) aparecen en la misma columna. Se clasifica el patrón
// antes de delegar en el parser estándar.
var (
	reMilesPuntoDecimalComa = regexp.MustCompile(`\d+\.\d{3,},\d+`)
	reSoloMilesPunto        = regexp.MustCompile(`^\d+\.\d{3,}$`)
)

// ParseNumero convierte el texto de una celda en un decimal finito.
// Entrada vacía o no interpretable produce cero, nunca un error.
func ParseNumero(celda string) decimal.Decimal {
	s := strings.TrimSpace(celda)
	if s == "" {
		return decimal.Zero
	}

	switch {
	case reMilesPuntoDecimalComa.MatchString(s):
		// 1.234,56 -> 1234.56
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case strings.Contains(s, ",") && !strings.Contains(s, "."):
		// 1234,56 -> 1234.56
		s = strings.Replace(s, ",", ".", 1)
	case reSoloMilesPunto.MatchString(s):
		// 1.234 -> 1234
		s = strings.ReplaceAll(s, ".", "")
	}

	n, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return n
}
