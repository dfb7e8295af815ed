package main

import (
	"io"
	"log/slog"
	"os"

	"librarycatalog/internal/catalog"
	"librarycatalog/internal/config"
	"librarycatalog/internal/console"
	"librarycatalog/internal/loan"
	"librarycatalog/internal/logging"
)

func main() {
	cfg, err := loadConfig()
	logger := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		logger.Warn("invalid configuration, using defaults", "error", err)
	}
	if err := run(cfg, logger, os.Stdin, os.Stdout); err != nil {
		logger.Error("console stopped", "error", err)
	}
}

// loadConfig falls back to defaults on a bad configuration so the console
// always starts. The load error is still returned for logging.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Defaults(), err
	}
	return cfg, nil
}

func run(cfg *config.Config, logger *slog.Logger, in io.Reader, out io.Writer) error {
	catalogService := catalog.NewService(catalog.NewMemoryRepo(), logger)
	loanService := loan.NewService(catalogService, loan.SystemClock{}, cfg.Loan.PeriodDays, logger)

	app := console.NewApp(catalogService, loanService, in, out)

	logger.Debug("catalog console started", "loan_period_days", cfg.Loan.PeriodDays)
	return app.Run()
}
