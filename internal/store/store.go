// Package store opens the task repository selected by the configuration.
package store

import (
	"context"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"notes/internal/adapters/jsonl"
	"notes/internal/adapters/memory"
	"notes/internal/adapters/sqlite"
	"notes/internal/config"
	"notes/internal/ports"
)

// Open returns the repository named by cfg.Store. The caller closes it
// with Close when done.
// Unknown store names are reported as *config.Error.
func Open(ctx context.Context, cfg *config.Config) (ports.TaskRepository, error) {
	path := cfg.StorePath()
	log.WithFields(log.Fields{"store": cfg.Store, "path": path}).Debug("opening store")

	switch cfg.Store {
	case config.StoreMemory:
		return memory.NewRepository(), nil
	case config.StoreJSONL:
		repo, err := jsonl.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening jsonl store: %w", err)
		}
		return repo, nil
	case config.StoreSQLite:
		repo, err := sqlite.Open(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return repo, nil
	}
	return nil, &config.Error{Source: "store", Err: fmt.Errorf("unknown store %q", cfg.Store)}
}

// Close releases repo if it holds resources.
func Close(repo ports.TaskRepository) error {
	if c, ok := repo.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
