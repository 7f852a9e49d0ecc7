package planilla

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/domain/entity"
)

// ParseCSV decodifica el CSV exportado por Google Sheets en registros crudos.
// La primera fila es el encabezado; cada fila siguiente produce un Registro
// emparejando celdas contra el encabezado por posición.
//
// El parser es deliberadamente tolerante: filas con menos celdas que el
// encabezado rellenan con vacío, celdas sobrantes se descartan y una fila
// malformada jamás corta la lectura del resto.
func ParseCSV(texto string) []entity.Registro {
	r := csv.NewReader(strings.NewReader(texto))
	r.FieldsPerRecord = -1 // la hoja produce filas desparejas
	r.LazyQuotes = true

	var filas [][]string
	for {
		fila, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// fila malformada: se descarta y se sigue con la siguiente
			continue
		}
		filas = append(filas, fila)
	}
	if len(filas) == 0 {
		return nil
	}

	encabezado := make([]string, len(filas[0]))
	for i, h := range filas[0] {
		h = strings.TrimSpace(h)
		if i == 0 {
			h = strings.TrimPrefix(h, "\uFEFF") // BOM del export
		}
		encabezado[i] = h
	}

	registros := make([]entity.Registro, 0, len(filas)-1)
	for _, fila := range filas[1:] {
		if filaVacia(fila) {
			continue
		}
		reg := make(entity.Registro, len(encabezado))
		for i, col := range encabezado {
			if i < len(fila) {
				reg[col] = strings.TrimSpace(fila[i])
			} else {
				reg[col] = ""
			}
		}
		registros = append(registros, reg)
	}
	return registros
}

func filaVacia(fila []string) bool {
	for _, c := range fila {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
