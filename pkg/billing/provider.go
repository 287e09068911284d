package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/prospectly/platform/pkg/tier"
)

// EventType classifies provider webhook events into the subset the
// subscription sync path acts on.
type EventType string

const (
	EventSubscriptionCreated   EventType = "subscription.created"
	EventSubscriptionUpdated   EventType = "subscription.updated"
	EventSubscriptionCancelled EventType = "subscription.cancelled"
	EventSubscriptionResumed   EventType = "subscription.resumed"
	EventPaymentSucceeded      EventType = "payment.succeeded"
	EventPaymentFailed         EventType = "payment.failed"
)

// WebhookEvent is a provider-agnostic view of a billing webhook. The
// workspace and service tier IDs come from checkout custom data set when
// the subscription was created.
type WebhookEvent struct {
	Type               EventType
	ProviderEvent      string
	SubscriptionID     string
	WorkspaceID        uuid.UUID
	ServiceTierID      uuid.UUID
	Status             tier.SubscriptionStatus
	MonthlyPrice       int64
	CurrentPeriodStart *time.Time
	CurrentPeriodEnd   *time.Time
	CancelledAt        *time.Time
	OccurredAt         time.Time
}

// Provider abstracts the billing provider's webhook surface.
type Provider interface {
	// ParseWebhook verifies the payload signature and translates the
	// event into the provider-agnostic shape. Returns
	// ErrInvalidSignature on verification failure.
	ParseWebhook(ctx context.Context, payload []byte, signature string) (*WebhookEvent, error)
}
