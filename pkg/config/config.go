package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Drivers de persistencia del snapshot.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App         AppConfig
	HTTP        HTTPConfig
	DB          DBConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
	Persistence PersistenceConfig
	JWT         JWTConfig
	Auth        AuthConfig
	AI          AIConfig
	Cache       CacheConfig
	Report      ReportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
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
}

// ConnectionString devuelve DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN arma el connection string con URL encoding para caracteres especiales.
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

// RedisConfig conexión a Redis (snapshot y caché del tablero).
type RedisConfig struct {
	Addr     string // vacío = deshabilitado
	Password string
	DB       int
}

// Enabled indica si hay Redis configurado.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// KafkaConfig brokers y tópicos de eventos de pedidos.
type KafkaConfig struct {
	Brokers            []string // vacío = eventos deshabilitados
	EventsTopic        string
	RemoteOrdersTopic  string
	GroupID            string
	ConsumerWorkers    int
	ProducerBufferSize int
}

// Enabled indica si hay brokers configurados.
func (c KafkaConfig) Enabled() bool { return len(c.Brokers) > 0 }

// PersistenceConfig dónde se guarda el snapshot del estado.
type PersistenceConfig struct {
	Driver      string // memory | postgres | redis
	SnapshotKey string
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AuthConfig PIN de administrador y contraseña de los usuarios sembrados.
// AdminPINHash (bcrypt) tiene prioridad sobre AdminPIN.
type AuthConfig struct {
	AdminPIN     string
	AdminPINHash string
	SeedPassword string
}

// AIConfig proveedor y modelos de IA.
type AIConfig struct {
	Provider        string // gemini | anthropic
	GeminiAPIKey    string
	GeminiModel     string
	AnthropicAPIKey string
	AnthropicModel  string
	Timeout         time.Duration
}

// CacheConfig TTL de la caché del tablero.
type CacheConfig struct {
	DashboardTTL time.Duration
}

// ReportConfig exportación de reportes.
type ReportConfig struct {
	PDFFontPath string // TTF con glifos tailandeses; vacío usa helvetica
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, JWT_SECRET, ADMIN_PIN, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "laglace-stock-portal"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "laglace"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers:            getList(v, "KAFKA_BROKERS"),
			EventsTopic:        getString(v, "KAFKA_EVENTS_TOPIC", "laglace.orders.events"),
			RemoteOrdersTopic:  getString(v, "KAFKA_REMOTE_ORDERS_TOPIC", "laglace.orders.remote"),
			GroupID:            getString(v, "KAFKA_GROUP_ID", "laglace-stock-portal"),
			ConsumerWorkers:    getInt(v, "KAFKA_CONSUMER_WORKERS", 1),
			ProducerBufferSize: getInt(v, "KAFKA_PRODUCER_BUFFER", 256),
		},
		Persistence: PersistenceConfig{
			Driver:      strings.ToLower(getString(v, "PERSISTENCE_DRIVER", DriverMemory)),
			SnapshotKey: getString(v, "SNAPSHOT_KEY", "laglace_state"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "laglace-stock-portal"),
		},
		Auth: AuthConfig{
			AdminPIN:     getString(v, "ADMIN_PIN", ""),
			AdminPINHash: getString(v, "ADMIN_PIN_HASH", ""),
			SeedPassword: getString(v, "SEED_PASSWORD", "password123"),
		},
		AI: AIConfig{
			Provider:        strings.ToLower(getString(v, "AI_PROVIDER", "gemini")),
			GeminiAPIKey:    getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:     getString(v, "GEMINI_MODEL", "gemini-2.0-flash"),
			AnthropicAPIKey: getString(v, "ANTHROPIC_API_KEY", ""),
			AnthropicModel:  getString(v, "ANTHROPIC_MODEL", "claude-3-5-haiku-latest"),
			Timeout:         time.Duration(getInt(v, "AI_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Cache: CacheConfig{
			DashboardTTL: time.Duration(getInt(v, "DASHBOARD_CACHE_TTL_SECONDS", 60)) * time.Second,
		},
		Report: ReportConfig{
			PDFFontPath: getString(v, "PDF_FONT_PATH", ""),
		},
	}

	// PIN por defecto solo en development.
	if cfg.Auth.AdminPIN == "" && cfg.Auth.AdminPINHash == "" && cfg.App.Env == "development" {
		cfg.Auth.AdminPIN = "1234"
	}

	switch cfg.Persistence.Driver {
	case DriverMemory, DriverPostgres, DriverRedis:
	default:
		return nil, fmt.Errorf("config: PERSISTENCE_DRIVER inválido %q", cfg.Persistence.Driver)
	}
	if cfg.Persistence.Driver == DriverRedis && !cfg.Redis.Enabled() {
		return nil, fmt.Errorf("config: PERSISTENCE_DRIVER=redis requiere REDIS_ADDR")
	}

	return cfg, nil
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

// getList separa valores por coma (ej. KAFKA_BROKERS=a:9092,b:9092).
func getList(v *viper.Viper, key string) []string {
	raw := getString(v, key, "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
