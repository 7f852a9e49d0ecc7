package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/application/ports"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/internal/domain"
	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/pkg/config"
)

var _ ports.ActualizadorEstado = (*ScriptClient)(nil)

// ScriptClient habla con el Apps Script (doPost) que edita filas de la hoja.
type ScriptClient struct {
	httpClient *http.Client
	url        string
}

// NewScriptClient construye el cliente del endpoint de mutación.
func NewScriptClient(cfg config.PlanillaConfig) *ScriptClient {
	return &ScriptClient{
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		url:        cfg.ScriptURL,
	}
}

// ── Contrato del Apps Script ──────────────────────────────────────────────────

type scriptRequest struct {
	Action      string `json:"action"`
	PedidoID    string `json:"pedidoID"`
	NuevoEstado string `json:"nuevoEstado"`
}

type scriptResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// ActualizarEstado envía el cambio de estado del pedido. Cualquier resultado
// distinto de un 2xx con {ok: true} es una falla: el script a veces responde
// sin cabeceras CORS ni cuerpo JSON interpretable, y en ese caso el cambio se
// trata como no confirmado.
func (s *ScriptClient) ActualizarEstado(ctx context.Context, pedidoID, nuevoEstado string) error {
	if s.url == "" {
		return fmt.Errorf("%w: SCRIPT_URL no configurado", domain.ErrActualizacionRechazada)
	}

	cuerpo, err := json.Marshal(scriptRequest{
		Action:      "update_status",
		PedidoID:    pedidoID,
		NuevoEstado: nuevoEstado,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(cuerpo))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrActualizacionRechazada, err)
	}
	defer resp.Body.Close()

	var datos scriptResponse
	confirmado := false
	if cuerpoResp, errLeer := io.ReadAll(resp.Body); errLeer == nil {
		confirmado = json.Unmarshal(cuerpoResp, &datos) == nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || !confirmado || !datos.OK {
		mensaje := datos.Message
		if mensaje == "" {
			mensaje = fmt.Sprintf("no se pudo actualizar el estado (HTTP %d, revise el log del script)",
				resp.StatusCode)
		}
		return fmt.Errorf("%w: %s", domain.ErrActualizacionRechazada, mensaje)
	}
	return nil
}
