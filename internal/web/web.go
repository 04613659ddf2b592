// Package web serves the browser-facing pages: login, chat, the admin
// dashboard, and the document viewer. Pages are server-rendered from
// embedded templates; dynamic behavior comes from the JSON API.
package web

import (
	"embed"
	"log/slog"
	"net/http"

	"github.com/mckinzey/atrium/internal/auth"
	"github.com/mckinzey/atrium/internal/corpus"
	"github.com/mckinzey/atrium/pkg/middleware"
	"github.com/mckinzey/atrium/pkg/module"
	"github.com/mckinzey/atrium/pkg/routes"
	"github.com/mckinzey/atrium/pkg/web"
)

//go:embed templates/layouts/*.html
var layoutFS embed.FS

//go:embed templates/views/*.html
var viewFS embed.FS

var views = map[string]web.ViewDef{
	"login":    {Template: "login.html", Title: "Sign In - Knowledge Helper"},
	"chat":     {Template: "chat.html", Title: "Knowledge Helper"},
	"admin":    {Template: "admin.html", Title: "Admin Dashboard - Knowledge Helper"},
	"document": {Template: "document.html", Title: "Document - Knowledge Helper"},
}

// NewModule creates the web page module. It is mounted as the router
// fallback so it owns the root-level page paths.
func NewModule(logger *slog.Logger, authSys auth.System, corpusSys corpus.System) (*module.Module, error) {
	defs := make([]web.ViewDef, 0, len(views))
	for _, v := range views {
		defs = append(defs, v)
	}

	ts, err := web.NewTemplateSet(layoutFS, viewFS, "templates/layouts/*.html", "templates/views", "", defs)
	if err != nil {
		return nil, err
	}

	h := newHandler(ts, authSys, corpusSys, logger.With("module", "web"))

	mux := http.NewServeMux()
	routes.Register(mux, h.routes())

	m := module.New("/", mux)
	m.Use(middleware.Logger(h.logger))

	return m, nil
}
