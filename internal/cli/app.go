package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rustyeddy/folio/config"
	"github.com/rustyeddy/folio/ledger"
	"github.com/rustyeddy/folio/quotes"
)

// App carries the resolved configuration and logger shared by all
// subcommands. Precedence: defaults < config file < environment < flags.
type App struct {
	cfg *config.Config
	log *logrus.Logger

	flagConfig   string
	flagDB       string
	flagQuoteURL string
	flagLogLevel string
}

func (a *App) setup() error {
	cfg := config.Default()
	if a.flagConfig != "" {
		loaded, err := config.LoadFromFile(a.flagConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}

	if a.flagDB != "" {
		cfg.DBPath = a.flagDB
	}
	if a.flagQuoteURL != "" {
		cfg.QuoteBaseURL = a.flagQuoteURL
	}
	if a.flagLogLevel != "" {
		cfg.LogLevel = a.flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	log.SetLevel(level)

	a.cfg = cfg
	a.log = log
	return nil
}

func (a *App) openStore() (*ledger.SQLite, error) {
	return ledger.NewSQLite(a.cfg.DBPath)
}

func (a *App) quoteClient() *quotes.Client {
	timeout, _ := a.cfg.QuoteTimeoutDuration()
	return quotes.NewClient(a.cfg.QuoteBaseURL, timeout)
}
