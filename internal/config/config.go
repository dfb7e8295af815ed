package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the runtime configuration of the catalog console.
type Config struct {
	Loan LoanConfig
	Log  LogConfig
}

// LoanConfig holds borrowing settings.
type LoanConfig struct {
	PeriodDays int `env:"LOAN_PERIOD_DAYS" env-default:"7" validate:"gte=1,lte=365"`
}

// LogConfig holds logging settings. Logs always go to stderr.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  env-default:"warn" validate:"oneof=debug info warn error"`
	Format string `env:"LOG_FORMAT" env-default:"text" validate:"oneof=text json"`
}

var validate = validator.New()

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	return &Config{
		Loan: LoanConfig{PeriodDays: 7},
		Log:  LogConfig{Level: "warn", Format: "text"},
	}
}

// Load reads .env files, then the environment, then applies defaults.
// Variables already present in the environment win over the files.
func Load() (*Config, error) {
	loadEnvFiles()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}
