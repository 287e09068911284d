package billing

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/prospectly/platform/pkg/tier"
)

// Syncer applies provider webhook events to the service subscription
// store. It is the only write path into the service subscription model;
// tier resolution reads never mutate.
type Syncer struct {
	store tier.SubscriptionWriter
	log   *slog.Logger
}

// NewSyncer creates a Syncer. Panics on a nil store to fail fast during
// initialization. A nil logger disables logging.
func NewSyncer(store tier.SubscriptionWriter, log *slog.Logger) *Syncer {
	if store == nil {
		panic("billing: SubscriptionWriter is required")
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Syncer{store: store, log: log}
}

// Process applies a single webhook event. Unrecognized event types are
// logged and skipped so the provider does not retry them forever.
func (s *Syncer) Process(ctx context.Context, event *WebhookEvent) error {
	switch event.Type {
	case EventSubscriptionCreated, EventSubscriptionUpdated, EventSubscriptionResumed:
		return s.upsert(ctx, event, event.Status)
	case EventSubscriptionCancelled:
		return s.upsert(ctx, event, tier.StatusCancelled)
	case EventPaymentFailed:
		return s.upsert(ctx, event, tier.StatusPastDue)
	case EventPaymentSucceeded:
		// Payment success carries no state the subscription.updated
		// event does not; acknowledge without writing.
		return nil
	default:
		s.log.InfoContext(ctx, "ignoring unhandled billing event",
			slog.String("event", event.ProviderEvent))
		return nil
	}
}

func (s *Syncer) upsert(ctx context.Context, event *WebhookEvent, status tier.SubscriptionStatus) error {
	if event.WorkspaceID == uuid.Nil {
		return ErrMissingWorkspace
	}

	sub := &tier.ServiceSubscription{
		ID:                 uuid.New(),
		WorkspaceID:        event.WorkspaceID,
		ServiceTierID:      event.ServiceTierID,
		Status:             status,
		MonthlyPrice:       event.MonthlyPrice,
		ProviderSubID:      event.SubscriptionID,
		CurrentPeriodStart: event.CurrentPeriodStart,
		CurrentPeriodEnd:   event.CurrentPeriodEnd,
		CreatedAt:          event.OccurredAt,
		UpdatedAt:          event.OccurredAt,
		CancelledAt:        event.CancelledAt,
	}

	if err := s.store.SaveSubscription(ctx, sub); err != nil {
		return errors.Join(ErrFailedToSyncSubscription, err)
	}

	s.log.InfoContext(ctx, "synced service subscription",
		slog.String("provider_subscription_id", event.SubscriptionID),
		slog.String("workspace_id", event.WorkspaceID.String()),
		slog.String("status", string(status)))
	return nil
}
