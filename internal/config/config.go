package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config keeps runtime settings for the task manager.
type Config struct {
	DatabaseURL  string `env:"DATABASE_URL" env-default:":memory:"`
	LogLevel     string `env:"LOG_LEVEL" env-default:"info"`
	NoColor      bool   `env:"NO_COLOR" env-default:"false"`
	SeedExamples bool   `env:"SEED_EXAMPLES" env-default:"true"`
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}
