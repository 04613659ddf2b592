package api

import (
	"net/http"

	"github.com/mckinzey/atrium/internal/analytics"
	"github.com/mckinzey/atrium/internal/auth"
	"github.com/mckinzey/atrium/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain, runtime *Runtime) {
	routes.Register(
		mux,
		domain.Auth.Handler().Routes(),
		guarded(domain.Auth, domain.Assistant.Handler().Routes()),
		guarded(domain.Auth, runtime.Corpus.Handler().Routes()),
		guarded(domain.Auth, adminOnly(analytics.NewHandler(domain.Analytics, runtime.Logger).Routes())),
	)
}

// adminOnly wraps every route of a group with the admin gate. It composes
// inside guarded so the session check runs first.
func adminOnly(group routes.Group) routes.Group {
	for i, route := range group.Routes {
		group.Routes[i].Handler = auth.RequireAdmin(route.Handler)
	}
	for i, child := range group.Children {
		group.Children[i] = adminOnly(child)
	}
	return group
}

// guarded wraps every route of a group with session authentication.
func guarded(sys auth.System, group routes.Group) routes.Group {
	for i, route := range group.Routes {
		group.Routes[i].Handler = auth.RequireSession(sys, route.Handler)
	}
	for i, child := range group.Children {
		group.Children[i] = guarded(sys, child)
	}
	return group
}
