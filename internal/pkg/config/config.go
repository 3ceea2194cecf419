package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, TTLs, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
	Ledger LedgerConfig
	QR     QRConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Auth   AuthConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type LedgerConfig struct {
	BaseURL   string        `envconfig:"LEDGER_BASE_URL" required:"true"`
	Timeout   time.Duration `envconfig:"LEDGER_TIMEOUT" default:"3s"`
	CacheSize int           `envconfig:"LEDGER_CACHE_SIZE" default:"1024"`
	CacheTTL  time.Duration `envconfig:"LEDGER_CACHE_TTL" default:"30s"`
}

type QRConfig struct {
	TokenTTL time.Duration `envconfig:"QR_TOKEN_TTL" default:"5m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// AuthConfig carries the bcrypt hash of the manufacturer API key. Callers
// presenting the matching key are issued a bearer token; there is no user
// account management beyond that.
type AuthConfig struct {
	ManufacturerKeyHash string `envconfig:"MANUFACTURER_KEY_HASH" required:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Ledger: LedgerConfig{
			BaseURL:   "http://localhost:18545",
			Timeout:   500 * time.Millisecond,
			CacheSize: 16,
			CacheTTL:  time.Second,
		},
		QR: QRConfig{
			TokenTTL: 5 * time.Minute,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
