package cmd

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"moviegrip/internal/catalog"
	"moviegrip/internal/config"
	"moviegrip/internal/eventbus"
	"moviegrip/internal/logging"
	"moviegrip/internal/searchcount"
)

// app holds the services shared by every command
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	logFile  io.Closer
	bus      eventbus.EventBus
	counter  searchcount.Counter
	recorder *searchcount.Recorder
	catalog  *catalog.Client
}

// setup loads the configuration and starts the shared services
func setup(c *cli.Command) (*app, error) {
	configSvc := config.NewConfigServiceAt(c.String("config"))
	cfg, err := configSvc.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if driver := c.String("storage"); driver != "" {
		cfg.Storage.Driver = driver
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configSvc.Path(), err)
	}

	log, logFile, err := logging.Setup(cfg.Log, c.Bool("debug"))
	if err != nil {
		return nil, err
	}

	counter, err := openCounter(cfg.Storage)
	if err != nil {
		logFile.Close()
		return nil, err
	}

	bus := eventbus.New(log)
	a := &app{
		cfg:      cfg,
		log:      log,
		logFile:  logFile,
		bus:      bus,
		counter:  counter,
		recorder: searchcount.NewRecorder(counter, bus, log),
		catalog:  catalog.NewClient(cfg.Catalog),
	}

	log.Info().
		Str("config", configSvc.Path()).
		Str("storage", cfg.Storage.Driver).
		Str("catalog", cfg.Catalog.BaseURL).
		Msg("moviegrip starting")

	return a, nil
}

// Close flushes pending search counts and releases resources
func (a *app) Close() {
	// Closing the bus lets queued increments finish
	a.bus.Close()
	a.recorder.Stop()
	if err := a.counter.Close(); err != nil {
		a.log.Warn().Err(err).Msg("Failed to close search-count store")
	}
	a.log.Info().Msg("moviegrip stopped")
	a.logFile.Close()
}

func openCounter(cfg config.StorageConfig) (searchcount.Counter, error) {
	switch cfg.Driver {
	case "memory":
		return searchcount.NewMemoryStore(), nil
	case "sqlite", "":
		store, err := searchcount.OpenSQLite(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("opening search-count store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
