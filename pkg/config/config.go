package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo .env).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	API   APIConfig
	JWT   JWTConfig
	Table TableConfig
}

// AppConfig configuración general.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig servidor HTTP propio (fachada de administración).
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// APIConfig servicio remoto de persistencia (REST).
type APIConfig struct {
	BaseURL string // ej. http://localhost:8080/api
	Token   string // opcional: bearer token de servicio
	Timeout int    // segundos por petición
}

// TimeoutDuration timeout de red como duración.
func (c APIConfig) TimeoutDuration() time.Duration {
	if c.Timeout <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.Timeout) * time.Second
}

// JWTConfig validación del token de sesión que emite el login externo.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos, solo para emisión en pruebas
	Issuer     string
}

// TableConfig comportamiento de las tablas de administración.
type TableConfig struct {
	PageSize int // filas por página; 10 en el sistema original
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// un archivo .env en el directorio de trabajo). Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "almacen-admin")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8081)
	v.SetDefault("API_BASE_URL", "http://localhost:8080/api")
	v.SetDefault("API_TOKEN", "")
	v.SetDefault("API_TIMEOUT_SECONDS", 15)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRATION_MINUTES", 60)
	v.SetDefault("JWT_ISSUER", "almacen-admin")
	v.SetDefault("TABLE_PAGE_SIZE", 10)

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("APP_ENV"),
			Name:     v.GetString("APP_NAME"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		API: APIConfig{
			BaseURL: strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
			Token:   v.GetString("API_TOKEN"),
			Timeout: v.GetInt("API_TIMEOUT_SECONDS"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("JWT_SECRET"),
			Expiration: v.GetInt("JWT_EXPIRATION_MINUTES"),
			Issuer:     v.GetString("JWT_ISSUER"),
		},
		Table: TableConfig{
			PageSize: v.GetInt("TABLE_PAGE_SIZE"),
		},
	}

	return cfg, nil
}
