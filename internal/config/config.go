package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel int      `env:"LOG_LEVEL" envDefault:"0"`
	HTTP     HTTP     `envPrefix:"HTTP_"`
	Storage  Storage  `envPrefix:"STORAGE_"`
	Database Database `envPrefix:"DATABASE_"`
	JWT      JWT      `envPrefix:"JWT_"`
	Bcrypt   Bcrypt   `envPrefix:"BCRYPT_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Addr            string        `env:"ADDR" envDefault:"0.0.0.0:8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Storage selects the repository backend.
type Storage struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
}

// Database contains database connection parameters.
type Database struct {
	DSN     string `env:"DSN"`
	Migrate bool   `env:"MIGRATE" envDefault:"true"`
}

// JWT contains token signing parameters. The secret has no default: a
// missing secret must stop the server from starting.
type JWT struct {
	Secret     string `env:"SECRET,required,notEmpty"`
	TTLMinutes int    `env:"TTL_MINUTES" envDefault:"30"`
}

func (j JWT) TTL() time.Duration {
	return time.Duration(j.TTLMinutes) * time.Minute
}

// Bcrypt contains password hashing parameters.
type Bcrypt struct {
	Cost int `env:"COST" envDefault:"10"`
}

// NewConfig loads configuration from an optional .env file and then from
// environment variables. Variables already set in the environment win over
// the .env file.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	err := validation.Errors{
		"STORAGE_DRIVER": validation.Validate(c.Storage.Driver,
			validation.Required,
			validation.In(StorageDriverPostgres, StorageDriverMemory),
		),
		"JWT_TTL_MINUTES": validation.Validate(c.JWT.TTLMinutes, validation.Required, validation.Min(1)),
		"BCRYPT_COST": validation.Validate(c.Bcrypt.Cost,
			validation.Required,
			validation.Min(bcrypt.MinCost),
			validation.Max(bcrypt.MaxCost),
		),
		"HTTP_ADDR": validation.Validate(c.HTTP.Addr, validation.Required),
	}.Filter()
	if err != nil {
		return err
	}

	if c.Storage.Driver == StorageDriverPostgres && c.Database.DSN == "" {
		return errors.New("DATABASE_DSN is required for the postgres storage driver")
	}

	return nil
}
