package main

import (
	"github.com/mahmoud/recruitify/internal/config"
	"github.com/mahmoud/recruitify/internal/store"
)

// loadConfig loads configuration from the optional --config file plus
// the environment, then validates store settings.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openStore builds the remote store gateway from configuration.
func openStore(cfg *config.Config) (store.Store, error) {
	var opts []store.RTDBOption
	if cfg.DatabaseToken != "" {
		opts = append(opts, store.WithAuthToken(cfg.DatabaseToken))
	}
	return store.NewRTDB(cfg.DatabaseURL, opts...)
}
