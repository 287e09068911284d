package workspace

import (
	"github.com/go-chi/chi/v5"

	"github.com/prospectly/platform/pkg/session"
)

// Router mounts the workspace module. Every route requires an
// authenticated workspace session.
//
// Example:
//
//	h := workspace.NewHandler(tierService, log)
//	r.Mount("/api/workspace", workspace.Router(sessionStore, h))
func Router(store session.Store, h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(session.RequireWorkspace(store))
	r.Get("/tier", h.GetTier)
	return r
}
