package billing

import (
	"github.com/go-chi/chi/v5"
)

// Router mounts the billing module. The webhook route is unauthenticated;
// requests are authenticated by signature verification instead.
//
// Example:
//
//	h := billing.NewHandler(provider, syncer, log)
//	r.Mount("/api/billing", billing.Router(h))
func Router(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/webhook", h.Webhook)
	return r
}
