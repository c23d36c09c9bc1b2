package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/questify/questify/internal/config"
	"github.com/questify/questify/internal/docstore"
	"github.com/questify/questify/internal/engine"
)

// loadConfig resolves the effective configuration from the standard paths,
// the --config flag, and environment variables.
func loadConfig() (*config.Config, error) {
	loader := config.NewLoader()
	cfg, err := loader.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if outputFmt != "" {
		cfg.Output.DefaultFormat = outputFmt
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	return cfg, nil
}

// openEngine loads the configuration, opens the document store, and rebuilds
// the index. The returned cleanup closes the store.
func openEngine(ctx context.Context, opts ...engine.Option) (*engine.Engine, *config.Config, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	store, err := docstore.Open(cfg.Storage.DatabasePath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open document store: %w", err)
	}
	cleanup := func() {
		if closeErr := store.Close(); closeErr != nil && isVerbose() {
			fmt.Fprintf(os.Stderr, "Warning: failed to close document store: %v\n", closeErr)
		}
	}

	eng := engine.New(cfg, store, opts...)
	if err := eng.Rebuild(ctx); err != nil {
		cleanup()
		return nil, nil, nil, err
	}

	return eng, cfg, cleanup, nil
}
