package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingSupabase se devuelve cuando falta la URL o la clave del backend.
var ErrMissingSupabase = errors.New("config: SUPABASE_URL y SUPABASE_KEY son obligatorias")

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Supabase SupabaseConfig
	DB       DBConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP (BFF).
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SupabaseConfig datos del endpoint PostgREST.
type SupabaseConfig struct {
	URL       string
	Key       string
	Timeout   time.Duration // 0 = sin límite
	APIClient string        // estrategia por defecto: fetch, axios, alova
}

// RestURL devuelve la raíz REST (<url>/rest/v1) sin barra final.
func (c SupabaseConfig) RestURL() string {
	return strings.TrimRight(c.URL, "/") + "/rest/v1"
}

// DBConfig conexión directa opcional a PostgreSQL.
// Si DatabaseURL está vacío, ventas y movimientos se registran vía REST con compensación.
type DBConfig struct {
	DatabaseURL string
}

// Enabled indica si hay conexión directa configurada.
func (c DBConfig) Enabled() bool { return c.DatabaseURL != "" }

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. No valida: llamar a Validate antes de construir clientes.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventario-supabase"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Supabase: SupabaseConfig{
			URL:       firstString(v, "", "SUPABASE_URL", "VITE_SUPABASE_URL"),
			Key:       firstString(v, "", "SUPABASE_KEY", "VITE_SUPABASE_KEY"),
			Timeout:   time.Duration(getInt(v, "SUPABASE_TIMEOUT_SECONDS", 15)) * time.Second,
			APIClient: getString(v, "API_CLIENT", "fetch"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
		},
	}
	return cfg, nil
}

// Validate verifica los valores obligatorios. Un error aquí debe detener el arranque.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Supabase.URL) == "" || strings.TrimSpace(c.Supabase.Key) == "" {
		return ErrMissingSupabase
	}
	u, err := url.Parse(c.Supabase.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("config: SUPABASE_URL inválida: %q", c.Supabase.URL)
	}
	if c.Supabase.Timeout < 0 {
		return fmt.Errorf("config: SUPABASE_TIMEOUT_SECONDS no puede ser negativo")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

// firstString devuelve el primer key definido y no vacío.
func firstString(v *viper.Viper, def string, keys ...string) string {
	for _, k := range keys {
		if s := strings.TrimSpace(v.GetString(k)); s != "" {
			return s
		}
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
