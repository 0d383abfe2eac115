package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverLibSQL   = "libsql"
	DriverPostgres = "postgres"

	defaultSQLiteURL = "file:database.db"
)

type Config struct {
	Port            string        `env:"PORT" envDefault:"3000"`
	AppEnv          string        `env:"APP_ENV" envDefault:"local"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	CSRFSecret      string        `env:"CSRF_SECRET"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	Database        Database      `envPrefix:"DB_"`
}

// Database holds the discrete connection parameters of a networked datastore.
type Database struct {
	Driver   string `env:"DRIVER"`
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"5432"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME"`
}

func Load() (*Config, error) {
	_ = godotenv.Load() // Ignore error if .env not found (e.g. prod)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.Driver() {
	case DriverSQLite, DriverPostgres:
	case DriverLibSQL:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DB_DRIVER %q requires DATABASE_URL", DriverLibSQL)
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	return &cfg, nil
}

// Driver picks the storage backend. An explicit DB_DRIVER wins, then the
// DATABASE_URL scheme, then the presence of DB_HOST.
func (c *Config) Driver() string {
	if d := strings.ToLower(strings.TrimSpace(c.Database.Driver)); d != "" {
		return d
	}

	switch {
	case isPostgresURL(c.DatabaseURL):
		return DriverPostgres
	case strings.HasPrefix(c.DatabaseURL, "libsql://"), strings.HasPrefix(c.DatabaseURL, "wss://"):
		return DriverLibSQL
	case c.DatabaseURL == "" && c.Database.Host != "":
		return DriverPostgres
	}
	return DriverSQLite
}

// DSN returns the connection string for the selected driver.
func (c *Config) DSN() string {
	switch c.Driver() {
	case DriverSQLite:
		if c.DatabaseURL == "" {
			return defaultSQLiteURL
		}
		return c.DatabaseURL
	case DriverLibSQL:
		return c.DatabaseURL
	}

	if isPostgresURL(c.DatabaseURL) {
		return c.DatabaseURL
	}

	host := c.Database.Host
	if host == "" {
		host = "localhost"
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(host, strconv.Itoa(c.Database.Port)),
		Path:   "/" + c.Database.Name,
	}
	if c.Database.User != "" {
		if c.Database.Password != "" {
			u.User = url.UserPassword(c.Database.User, c.Database.Password)
		} else {
			u.User = url.User(c.Database.User)
		}
	}
	return u.String()
}

func isPostgresURL(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}
