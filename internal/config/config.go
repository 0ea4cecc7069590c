package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"insights-api/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev) and is attached
	// to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP  configs.HTTP     `envPrefix:"HTTP_"`
	Log   configs.Logger   `envPrefix:"LOG_"`
	Store configs.Store    `envPrefix:"STORE_"`
	Psql  configs.Postgres `envPrefix:"PSQL_"`
	AI    configs.AI       `envPrefix:"AI_"`
}

// Load reads configuration from environment variables into a Config and
// validates it. Fields without a variable take their declared defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Store.Driver {
	case configs.StoreMemory, configs.StorePostgres:
	default:
		return fmt.Errorf("STORE_DRIVER: unknown driver %q", c.Store.Driver)
	}
	if c.AI.RateLimitBurst < 0 {
		return fmt.Errorf("AI_RATE_LIMIT_BURST must not be negative")
	}
	return nil
}
