// Package sheets implementa los adaptadores contra Google: la lectura del
// export CSV de la hoja y el Apps Script que muta filas.
package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/application/ports"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/domain"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/domain/entity"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/domain/planilla"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/pkg/config"
)

// Verificar en tiempo de compilación que CSVClient implementa el puerto.
var _ ports.FuenteRegistros = (*CSVClient)(nil)

const gvizBaseURL = "https://docs.google.com/spreadsheets/d"

// CSVClient lee la hoja mediante el export gviz en formato CSV.
type CSVClient struct {
	httpClient *http.Client
	baseURL    string // sobreescribible en tests
	sheetID    string
	sheetName  string
}

// NewCSVClient construye el cliente con el timeout configurado.
func NewCSVClient(cfg config.PlanillaConfig) *CSVClient {
	return &CSVClient{
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		baseURL:    gvizBaseURL,
		sheetID:    cfg.SheetID,
		sheetName:  cfg.SheetName,
	}
}

// Leer descarga y decodifica el CSV completo de la hoja. El parámetro bust
// con la hora actual evita respuestas cacheadas entre ciclos de refresco.
func (c *CSVClient) Leer(ctx context.Context) ([]entity.Registro, error) {
	u := fmt.Sprintf("%s/%s/gviz/tq?tqx=out:csv&sheet=%s&bust=%d",
		c.baseURL, c.sheetID, url.QueryEscape(c.sheetName), time.Now().UnixMilli())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFuenteNoDisponible, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFuenteNoDisponible, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: la hoja respondió HTTP %d (revise el ID y los permisos)",
			domain.ErrFuenteNoDisponible, resp.StatusCode)
	}

	cuerpo, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFuenteNoDisponible, err)
	}
	return planilla.ParseCSV(string(cuerpo)), nil
}
