// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/mckinzey/atrium/internal/config"
	"github.com/mckinzey/atrium/internal/infrastructure"
	"github.com/mckinzey/atrium/pkg/middleware"
	"github.com/mckinzey/atrium/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, *Domain, error) {
	runtime := NewRuntime(cfg, infra)
	domain, err := NewDomain(runtime)
	if err != nil {
		return nil, nil, err
	}

	mux := http.NewServeMux()
	registerRoutes(mux, domain, runtime)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, domain, nil
}
