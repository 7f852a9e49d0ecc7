package planilla

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quitaTildes descompone (NFD), elimina las marcas combinantes y recompone.
// "Código" y "codigo" quedan iguales tras Normalizar.
var quitaTildes = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizar prepara un valor de celda para comparaciones insensibles a
// mayúsculas, espacios y tildes.
func Normalizar(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if plano, _, err := transform.String(quitaTildes, s); err == nil {
		return plano
	}
	return s
}
