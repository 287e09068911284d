package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	paddle "github.com/PaddleHQ/paddle-go-sdk/v4"
	"github.com/google/uuid"

	"github.com/prospectly/platform/pkg/tier"
)

// PaddleConfig holds configuration for the Paddle billing provider.
type PaddleConfig struct {
	APIKey        string `env:"PADDLE_API_KEY,required"`
	WebhookSecret string `env:"PADDLE_WEBHOOK_SECRET,required"`
	Environment   string `env:"PADDLE_ENVIRONMENT" envDefault:"production"`
}

// PaddleProvider implements Provider for Paddle.
type PaddleProvider struct {
	client   *paddle.SDK
	verifier *paddle.WebhookVerifier
}

// NewPaddleProvider creates a Paddle billing provider.
func NewPaddleProvider(config PaddleConfig) (*PaddleProvider, error) {
	if config.APIKey == "" {
		return nil, errors.New("paddle API key is required")
	}
	if config.WebhookSecret == "" {
		return nil, errors.New("paddle webhook secret is required")
	}

	var (
		client *paddle.SDK
		err    error
	)
	switch strings.ToLower(config.Environment) {
	case "sandbox":
		client, err = paddle.NewSandbox(config.APIKey)
	case "production", "":
		client, err = paddle.New(config.APIKey)
	default:
		return nil, fmt.Errorf("invalid paddle environment: %s", config.Environment)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create paddle client: %w", err)
	}

	return &PaddleProvider{
		client:   client,
		verifier: paddle.NewWebhookVerifier(config.WebhookSecret),
	}, nil
}

// paddleWebhook is the typed subset of Paddle's webhook envelope the sync
// path needs. Custom data carries the workspace and service tier IDs our
// checkout flow attaches to every subscription.
type paddleWebhook struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       struct {
		ID                   string            `json:"id"`
		Status               string            `json:"status"`
		CustomData           map[string]string `json:"custom_data"`
		CanceledAt           *time.Time        `json:"canceled_at"`
		CurrentBillingPeriod *struct {
			StartsAt time.Time `json:"starts_at"`
			EndsAt   time.Time `json:"ends_at"`
		} `json:"current_billing_period"`
		Items []struct {
			Price struct {
				ID        string `json:"id"`
				UnitPrice struct {
					Amount string `json:"amount"`
				} `json:"unit_price"`
			} `json:"price"`
		} `json:"items"`
	} `json:"data"`
}

// ParseWebhook verifies the Paddle signature and maps the event into the
// provider-agnostic shape.
func (p *PaddleProvider) ParseWebhook(ctx context.Context, payload []byte, signature string) (*WebhookEvent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "/webhook", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request for verification: %w", err)
	}
	req.Header.Set("Paddle-Signature", signature)

	valid, err := p.verifier.Verify(req)
	if err != nil {
		return nil, errors.Join(ErrInvalidSignature, err)
	}
	if !valid {
		return nil, ErrInvalidSignature
	}

	var raw paddleWebhook
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, errors.Join(ErrInvalidPayload, err)
	}

	event := &WebhookEvent{
		Type:           mapPaddleEventType(raw.EventType),
		ProviderEvent:  raw.EventType,
		SubscriptionID: raw.Data.ID,
		Status:         mapPaddleStatus(raw.Data.Status),
		OccurredAt:     raw.OccurredAt,
		CancelledAt:    raw.Data.CanceledAt,
	}

	if id, ok := raw.Data.CustomData["workspace_id"]; ok {
		if event.WorkspaceID, err = uuid.Parse(id); err != nil {
			return nil, errors.Join(ErrInvalidPayload, err)
		}
	}
	if id, ok := raw.Data.CustomData["service_tier_id"]; ok {
		if event.ServiceTierID, err = uuid.Parse(id); err != nil {
			return nil, errors.Join(ErrInvalidPayload, err)
		}
	}

	if bp := raw.Data.CurrentBillingPeriod; bp != nil {
		start, end := bp.StartsAt, bp.EndsAt
		event.CurrentPeriodStart = &start
		event.CurrentPeriodEnd = &end
	}

	// Paddle amounts are strings in the currency's smallest unit.
	if len(raw.Data.Items) > 0 {
		if amount := raw.Data.Items[0].Price.UnitPrice.Amount; amount != "" {
			if event.MonthlyPrice, err = strconv.ParseInt(amount, 10, 64); err != nil {
				return nil, errors.Join(ErrInvalidPayload, err)
			}
		}
	}

	return event, nil
}

func mapPaddleEventType(paddleEvent string) EventType {
	switch paddleEvent {
	case "subscription.created":
		return EventSubscriptionCreated
	case "subscription.updated":
		return EventSubscriptionUpdated
	case "subscription.canceled":
		return EventSubscriptionCancelled
	case "subscription.resumed":
		return EventSubscriptionResumed
	case "transaction.payment_succeeded":
		return EventPaymentSucceeded
	case "transaction.payment_failed":
		return EventPaymentFailed
	default:
		return EventType(paddleEvent)
	}
}

func mapPaddleStatus(paddleStatus string) tier.SubscriptionStatus {
	switch strings.ToLower(paddleStatus) {
	case "trialing":
		return tier.StatusTrialing
	case "active":
		return tier.StatusActive
	case "past_due":
		return tier.StatusPastDue
	case "canceled", "cancelled":
		return tier.StatusCancelled
	case "expired":
		return tier.StatusExpired
	default:
		return tier.SubscriptionStatus(paddleStatus)
	}
}
