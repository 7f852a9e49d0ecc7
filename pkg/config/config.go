package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Políticas de agrupación y de deuda soportadas por el agregador.
const (
	AgruparPorCodigo  = "codigo"
	AgruparPorCliente = "cliente"

	DeudaUltimaFila = "ultima_fila"
	DeudaSumaItems  = "suma_items"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Planilla PlanillaConfig
	Pedidos  PedidosConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// PlanillaConfig acceso a la hoja de cálculo remota y al script de mutación.
type PlanillaConfig struct {
	SheetID      string        // ID del documento de Google Sheets
	SheetName    string        // nombre exacto de la pestaña (ej. "Pedidos_Auto")
	ScriptURL    string        // URL del Apps Script que implementa doPost(e)
	PollInterval time.Duration // intervalo de refresco automático
	HTTPTimeout  time.Duration // timeout por petición saliente
}

// PedidosConfig políticas de negocio del visualizador.
type PedidosConfig struct {
	AgruparPor    string // "codigo" (clave única de pedido) o "cliente"
	PoliticaDeuda string // "ultima_fila" o "suma_items"
	ClaveTotales  string // clave en texto plano para mostrar totales (no es un control de seguridad)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo .env).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, SHEET_ID, SCRIPT_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "visualizador-luz-del-camino"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Planilla: PlanillaConfig{
			SheetID:      getString(v, "SHEET_ID", ""),
			SheetName:    getString(v, "SHEET_NAME", "Pedidos_Auto"),
			ScriptURL:    getString(v, "SCRIPT_URL", ""),
			PollInterval: time.Duration(getInt(v, "POLL_INTERVAL_SECONDS", 8)) * time.Second,
			HTTPTimeout:  time.Duration(getInt(v, "HTTP_TIMEOUT_SECONDS", 20)) * time.Second,
		},
		Pedidos: PedidosConfig{
			AgruparPor:    getString(v, "AGRUPAR_POR", AgruparPorCodigo),
			PoliticaDeuda: getString(v, "POLITICA_DEUDA", DeudaUltimaFila),
			ClaveTotales:  getString(v, "CLAVE_TOTALES", "2727"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Pedidos.AgruparPor {
	case AgruparPorCodigo, AgruparPorCliente:
	default:
		return fmt.Errorf("AGRUPAR_POR inválido: %q (use %q o %q)",
			c.Pedidos.AgruparPor, AgruparPorCodigo, AgruparPorCliente)
	}
	switch c.Pedidos.PoliticaDeuda {
	case DeudaUltimaFila, DeudaSumaItems:
	default:
		return fmt.Errorf("POLITICA_DEUDA inválida: %q (use %q o %q)",
			c.Pedidos.PoliticaDeuda, DeudaUltimaFila, DeudaSumaItems)
	}
	if c.Planilla.PollInterval <= 0 {
		return fmt.Errorf("POLL_INTERVAL_SECONDS debe ser positivo")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
