package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

var (
	errEnvVarNotFound  error = errors.New("environment variable not found")
	errUnknownDriver   error = errors.New("unknown store driver")
	errInvalidDuration error = errors.New("duration must be positive")
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"

	dbConnEnvKey   = "DB_CONNECTION_URL"
	mongoURIEnvKey = "MONGO_URI"
)

type App struct {
	Port            string        `env:"API_PORT" envDefault:"3000"`
	StoreDriver     string        `env:"STORE_DRIVER" envDefault:"memory"`
	DBConnectionURL string        `env:"DB_CONNECTION_URL"`
	MongoURI        string        `env:"MONGO_URI"`
	MongoDatabase   string        `env:"MONGO_DATABASE" envDefault:"exercisetracker"`
	StoreTimeout    time.Duration `env:"STORE_TIMEOUT" envDefault:"5s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// NewApp reads the configuration from the environment, loading .env first when present.
func NewApp() (App, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return App{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var app App
	if err := env.Parse(&app); err != nil {
		return App{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := app.Validate(); err != nil {
		return App{}, err
	}

	return app, nil
}

func (a App) Validate() error {
	switch a.StoreDriver {
	case DriverMemory:
	case DriverPostgres:
		if a.DBConnectionURL == "" {
			return fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
		}
	case DriverMongo:
		if a.MongoURI == "" {
			return fmt.Errorf("%w: %s", errEnvVarNotFound, mongoURIEnvKey)
		}
	default:
		return fmt.Errorf("%w: %q", errUnknownDriver, a.StoreDriver)
	}

	if a.StoreTimeout <= 0 {
		return fmt.Errorf("store timeout: %w", errInvalidDuration)
	}
	if a.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout: %w", errInvalidDuration)
	}

	return nil
}
