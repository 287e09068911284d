package tier

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/prospectly/platform/pkg/usage"
)

// Overview is the complete per-workspace view: the resolved tier plus the
// raw records and usage counters it was computed from. The raw records are
// exposed so callers can surface billing metadata without re-fetching.
type Overview struct {
	Resolved     ResolvedTier
	Legacy       *WorkspaceTier
	Subscription *ServiceSubscription
	ServiceTier  *ServiceTier
	Usage        usage.Snapshot
}

// Service aggregates tier records and usage counters into a workspace
// overview. It owns no state and performs no writes.
type Service struct {
	tiers TierStore
	subs  SubscriptionStore
	usage *usage.Reader
}

// NewService creates a Service. Panics on nil dependencies to fail fast
// during initialization.
func NewService(tiers TierStore, subs SubscriptionStore, reader *usage.Reader) *Service {
	if tiers == nil {
		panic("tier: TierStore is required")
	}
	if subs == nil {
		panic("tier: SubscriptionStore is required")
	}
	if reader == nil {
		panic("tier: usage.Reader is required")
	}
	return &Service{tiers: tiers, subs: subs, usage: reader}
}

// WorkspaceOverview fetches the workspace's tier records and a fresh usage
// snapshot, then resolves the effective tier. Missing records are data:
// a workspace with no assignment in either model resolves to the free
// tier. Only infrastructure failures return an error.
func (s *Service) WorkspaceOverview(ctx context.Context, workspaceID uuid.UUID) (*Overview, error) {
	legacy, err := s.tiers.GetWorkspaceTier(ctx, workspaceID)
	if err != nil {
		if !errors.Is(err, ErrTierNotFound) {
			return nil, err
		}
		legacy = nil
	}

	sub, svcTier, err := s.activeService(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	snap, err := s.usage.Snapshot(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	return &Overview{
		Resolved:     Resolve(legacy, svcTier),
		Legacy:       legacy,
		Subscription: sub,
		ServiceTier:  svcTier,
		Usage:        snap,
	}, nil
}

// activeService looks up the workspace's active subscription and its tier.
// A subscription referencing a missing tier is treated as no service model
// at all rather than a partial result.
func (s *Service) activeService(ctx context.Context, workspaceID uuid.UUID) (*ServiceSubscription, *ServiceTier, error) {
	sub, err := s.subs.GetActiveSubscription(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, ErrSubscriptionNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	if !sub.IsActive() {
		return nil, nil, nil
	}

	svcTier, err := s.subs.GetServiceTier(ctx, sub.ServiceTierID)
	if err != nil {
		if errors.Is(err, ErrServiceTierNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	return sub, svcTier, nil
}
