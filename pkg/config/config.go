package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Metrics MetricsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de los tokens de acceso y refresh.
type JWTConfig struct {
	Secret          string
	AccessMinutes   int
	RefreshMinutes  int
	Issuer          string
	UpdateLastLogin bool
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

// MetricsConfig controla la exposición de /metrics.
type MetricsConfig struct {
	Enabled bool
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := newViper()

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "restaurante-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: dbConfig(v),
		JWT: JWTConfig{
			Secret:          getString(v, "JWT_SECRET", ""),
			AccessMinutes:   getInt(v, "JWT_ACCESS_MINUTES", 5),
			RefreshMinutes:  getInt(v, "JWT_REFRESH_MINUTES", 1440),
			Issuer:          getString(v, "JWT_ISSUER", "restaurante-api"),
			UpdateLastLogin: getBool(v, "JWT_UPDATE_LAST_LOGIN", true),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Metrics: MetricsConfig{
			Enabled: getBool(v, "METRICS_ENABLED", true),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET es obligatorio")
	}
	if cfg.JWT.AccessMinutes <= 0 || cfg.JWT.RefreshMinutes <= 0 {
		return nil, fmt.Errorf("config: la duración de los tokens debe ser positiva")
	}
	return cfg, nil
}

// LoadDB lee solo la conexión a PostgreSQL (CLI administrativo: no necesita JWT_SECRET).
func LoadDB() DBConfig {
	return dbConfig(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func dbConfig(v *viper.Viper) DBConfig {
	return DBConfig{
		DatabaseURL: getString(v, "DATABASE_URL", ""),
		Host:        getString(v, "DB_HOST", "localhost"),
		Port:        getInt(v, "DB_PORT", 5432),
		User:        getString(v, "DB_USER", "postgres"),
		Password:    getString(v, "DB_PASSWORD", ""),
		DBName:      getString(v, "DB_NAME", "restaurante"),
		SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		MaxConns:    getInt(v, "DB_MAX_CONNS", 10),
	}
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
		case string:
			n, err := strconv.Atoi(v.GetString(key))
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(v.GetString(key))
	if err != nil {
		return def
	}
	return b
}
