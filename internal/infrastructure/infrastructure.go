// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, database, corpus) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mckinzey/atrium/internal/config"
	"github.com/mckinzey/atrium/internal/corpus"
	"github.com/mckinzey/atrium/pkg/database"
	"github.com/mckinzey/atrium/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, database access, and the document corpus.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Corpus    corpus.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	docs := corpus.New(cfg.Corpus.Path, cfg.Corpus.MaxDocumentSizeBytes(), logger)

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Corpus:    docs,
	}, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := i.Corpus.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("corpus start failed: %w", err)
	}
	return nil
}
