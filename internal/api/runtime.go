package api

import (
	"github.com/mckinzey/atrium/internal/config"
	"github.com/mckinzey/atrium/internal/infrastructure"
	"github.com/mckinzey/atrium/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Assistant  config.AssistantConfig
	Auth       config.AuthConfig
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Corpus:    infra.Corpus,
		},
		Pagination: cfg.API.Pagination,
		Assistant:  cfg.Assistant,
		Auth:       cfg.Auth,
	}
}
