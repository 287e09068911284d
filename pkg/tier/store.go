package tier

import (
	"context"

	"github.com/google/uuid"
)

// TierStore reads legacy tier assignments.
type TierStore interface {
	// GetWorkspaceTier retrieves a workspace's legacy tier assignment
	// joined with its plan definition. Returns ErrTierNotFound if the
	// workspace has no row.
	GetWorkspaceTier(ctx context.Context, workspaceID uuid.UUID) (*WorkspaceTier, error)
}

// SubscriptionStore reads service-model subscriptions and their tiers.
type SubscriptionStore interface {
	// GetActiveSubscription retrieves the workspace's currently active
	// service subscription. Returns ErrSubscriptionNotFound if none is
	// active.
	GetActiveSubscription(ctx context.Context, workspaceID uuid.UUID) (*ServiceSubscription, error)

	// GetServiceTier retrieves a service tier plan definition by ID.
	// Returns ErrServiceTierNotFound if it does not exist.
	GetServiceTier(ctx context.Context, id uuid.UUID) (*ServiceTier, error)
}

// SubscriptionWriter persists service subscription state. Used by billing
// webhook processing; the resolution read path never writes.
type SubscriptionWriter interface {
	// SaveSubscription creates or updates a subscription keyed by the
	// billing provider's subscription ID.
	SaveSubscription(ctx context.Context, sub *ServiceSubscription) error
}
