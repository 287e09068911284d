package billing

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/prospectly/platform/pkg/billing"
	"github.com/prospectly/platform/pkg/logger"
)

// SignatureHeader carries the provider's webhook signature.
const SignatureHeader = "Paddle-Signature"

// maxWebhookBody caps webhook payload size at 1 MiB.
const maxWebhookBody = 1 << 20

// Handler receives billing provider webhooks and applies them to the
// subscription store.
type Handler struct {
	provider billing.Provider
	syncer   *billing.Syncer
	log      *slog.Logger
}

// NewHandler creates a Handler. Panics on nil dependencies to fail fast
// during initialization. A nil logger disables logging.
func NewHandler(provider billing.Provider, syncer *billing.Syncer, log *slog.Logger) *Handler {
	if provider == nil {
		panic("billing: Provider is required")
	}
	if syncer == nil {
		panic("billing: Syncer is required")
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handler{provider: provider, syncer: syncer, log: log}
}

// Webhook handles POST /webhook. Invalid payloads are rejected with 400 so
// the provider stops retrying them; persistence failures return 500 to
// trigger a retry.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	event, err := h.provider.ParseWebhook(r.Context(), payload, r.Header.Get(SignatureHeader))
	if err != nil {
		h.log.WarnContext(r.Context(), "rejected billing webhook", logger.Error(err))
		http.Error(w, "invalid webhook", http.StatusBadRequest)
		return
	}

	if err := h.syncer.Process(r.Context(), event); err != nil {
		if errors.Is(err, billing.ErrMissingWorkspace) {
			h.log.WarnContext(r.Context(), "billing event has no workspace reference",
				slog.String("event", event.ProviderEvent))
			http.Error(w, "invalid webhook", http.StatusBadRequest)
			return
		}
		h.log.ErrorContext(r.Context(), "failed to process billing webhook",
			slog.String("event", event.ProviderEvent),
			logger.Error(err))
		http.Error(w, "webhook processing failed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
