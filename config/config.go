package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, read from the environment.
type Config struct {
	ListenAddr string `env:"TRAILBOUND_ADDR" envDefault:":8080"`
	DBPath     string `env:"TRAILBOUND_DB" envDefault:"trailbound.db"`
	LogLevel   string `env:"TRAILBOUND_LOG_LEVEL" envDefault:"info"`
	Debug      bool   `env:"TRAILBOUND_DEBUG" envDefault:"false"`

	// Default run parameters for new games; all overridable per run.
	Seed          int64  `env:"TRAILBOUND_SEED" envDefault:"0"`
	Pace          string `env:"TRAILBOUND_PACE" envDefault:"steady"`
	Diet          string `env:"TRAILBOUND_DIET" envDefault:"meager"`
	Persona       string `env:"TRAILBOUND_PERSONA" envDefault:"drifter"`
	StartingCents int64  `env:"TRAILBOUND_STARTING_CENTS" envDefault:"50000"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}
