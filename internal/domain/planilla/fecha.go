package planilla

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// reFechaDMA acepta día y mes de 1-2 dígitos y año de 2 o 4, con "/" o "-".
var reFechaDMA = regexp.MustCompile(`^(\d{1,2})[/\-](\d{1,2})[/\-](\d{2,4})$`)

// Layouts de respaldo para celdas que no vienen en formato día/mes/año.
var layoutsFecha = []string{
	"2006-01-02",
	time.RFC3339,
	"2006/01/02",
}

// ParseFecha interpreta la fecha de entrega de una celda. El formato
// principal es D/M/A (día primero, año de 2 o 4 dígitos; los de 2 se asumen
// en los 2000). Si nada calza devuelve ok=false, nunca un error.
func ParseFecha(celda string) (time.Time, bool) {
	s := strings.TrimSpace(celda)
	if s == "" {
		return time.Time{}, false
	}

	if m := reFechaDMA.FindStringSubmatch(s); m != nil {
		dia, _ := strconv.Atoi(m[1])
		mes, _ := strconv.Atoi(m[2])
		anio, _ := strconv.Atoi(m[3])
		if anio < 100 {
			anio += 2000
		}
		if mes < 1 || mes > 12 || dia < 1 || dia > 31 {
			return time.Time{}, false
		}
		return time.Date(anio, time.Month(mes), dia, 0, 0, 0, 0, time.Local), true
	}

	for _, layout := range layoutsFecha {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// InicioDelDia trunca t a las 00:00:00.000 locales.
func InicioDelDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FinDelDia lleva t a las 23:59:59.999999999 locales.
func FinDelDia(t time.Time) time.Time {
	return InicioDelDia(t).Add(24*time.Hour - time.Nanosecond)
}
