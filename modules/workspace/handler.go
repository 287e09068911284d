package workspace

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/prospectly/platform/pkg/logger"
	"github.com/prospectly/platform/pkg/session"
	"github.com/prospectly/platform/pkg/tier"
)

// Overviewer provides the workspace tier overview.
type Overviewer interface {
	WorkspaceOverview(ctx context.Context, workspaceID uuid.UUID) (*tier.Overview, error)
}

// Handler serves the workspace tier endpoints.
type Handler struct {
	tiers Overviewer
	log   *slog.Logger
}

// NewHandler creates a Handler. Panics on a nil Overviewer to fail fast
// during initialization. A nil logger disables logging.
func NewHandler(tiers Overviewer, log *slog.Logger) *Handler {
	if tiers == nil {
		panic("workspace: Overviewer is required")
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handler{tiers: tiers, log: log}
}

// GetTier handles GET /tier: the resolved tier, limits, and a fresh usage
// snapshot for the caller's workspace. Runs behind RequireWorkspace, so an
// unauthenticated caller never reaches it.
func (h *Handler) GetTier(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := session.WorkspaceIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
		return
	}

	overview, err := h.tiers.WorkspaceOverview(r.Context(), workspaceID)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to resolve workspace tier",
			logger.WorkspaceID(workspaceID), logger.Error(err))
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, newTierResponse(overview))
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
