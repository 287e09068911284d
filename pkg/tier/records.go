package tier

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus represents the billing state of a tier assignment or
// service subscription.
type SubscriptionStatus string

const (
	StatusTrialing  SubscriptionStatus = "trialing"
	StatusActive    SubscriptionStatus = "active"
	StatusPastDue   SubscriptionStatus = "past_due"
	StatusCancelled SubscriptionStatus = "cancelled"
	StatusExpired   SubscriptionStatus = "expired"
)

// BillingCycle is the billing frequency of a legacy tier assignment.
type BillingCycle string

const (
	BillingCycleMonthly BillingCycle = "monthly"
	BillingCycleYearly  BillingCycle = "yearly"
)

// ProductTier is a plan definition in the legacy tier model. Prices are in
// cents. Features is sparse: only the keys the plan explicitly grants.
type ProductTier struct {
	ID               uuid.UUID
	Name             string
	Slug             string
	DailyLeadLimit   int64
	MonthlyLeadLimit *int64 // nil means unbounded by policy
	Features         FeatureOverrides
	PriceMonthly     int64
	PriceYearly      int64
}

// WorkspaceTier is a workspace's legacy tier assignment: the referenced
// plan plus per-workspace overrides and billing metadata. At most one row
// exists per workspace; a missing row means the workspace runs on
// defaults, which is data, not an error.
type WorkspaceTier struct {
	WorkspaceID              uuid.UUID
	Tier                     ProductTier
	FeatureOverrides         *FeatureOverrides
	DailyLeadLimitOverride   *int64
	MonthlyLeadLimitOverride *int64
	Status                   SubscriptionStatus
	BillingCycle             BillingCycle
	TrialEndsAt              *time.Time
	CurrentPeriodEnd         *time.Time
	CancelAtPeriodEnd        bool
}

// ServiceTier is a plan definition in the newer service model, carrying a
// platform feature bundle and a list price in cents.
type ServiceTier struct {
	ID               uuid.UUID
	Name             string
	Slug             string
	PlatformFeatures PlatformFeatures
	MonthlyPrice     int64
}

// ServiceSubscription is a workspace's subscription to a service tier.
// MonthlyPrice is the contracted price in cents, which may differ from the
// tier's current list price.
type ServiceSubscription struct {
	ID                 uuid.UUID
	WorkspaceID        uuid.UUID
	ServiceTierID      uuid.UUID
	Status             SubscriptionStatus
	MonthlyPrice       int64
	ProviderSubID      string
	CurrentPeriodStart *time.Time
	CurrentPeriodEnd   *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
	CancelledAt        *time.Time
}

// IsActive reports whether the subscription currently entitles the
// workspace to its service tier: active or trialing status with the
// billing period not yet ended.
func (s *ServiceSubscription) IsActive() bool {
	if s.Status != StatusActive && s.Status != StatusTrialing {
		return false
	}
	if s.CurrentPeriodEnd != nil && time.Now().UTC().After(*s.CurrentPeriodEnd) {
		return false
	}
	return true
}
