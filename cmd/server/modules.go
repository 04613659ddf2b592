package main

import (
	"encoding/json"
	"net/http"

	"github.com/mckinzey/atrium/internal/api"
	"github.com/mckinzey/atrium/internal/config"
	"github.com/mckinzey/atrium/internal/infrastructure"
	"github.com/mckinzey/atrium/internal/web"
	"github.com/mckinzey/atrium/pkg/module"
)

type Modules struct {
	API *module.Module
	Web *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, domain, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	webModule, err := web.NewModule(infra.Logger, domain.Auth, infra.Corpus)
	if err != nil {
		return nil, err
	}

	return &Modules{
		API: apiModule,
		Web: webModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.SetFallback(m.Web)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"status": "not ready"})
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
	})

	return router
}
