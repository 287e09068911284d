package tier_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prospectly/platform/pkg/tier"
	"github.com/prospectly/platform/pkg/usage"
)

type fakeStore struct {
	workspaceTier *tier.WorkspaceTier
	subscription  *tier.ServiceSubscription
	serviceTiers  map[uuid.UUID]*tier.ServiceTier
	err           error
}

func (f *fakeStore) GetWorkspaceTier(_ context.Context, _ uuid.UUID) (*tier.WorkspaceTier, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.workspaceTier == nil {
		return nil, tier.ErrTierNotFound
	}
	return f.workspaceTier, nil
}

func (f *fakeStore) GetActiveSubscription(_ context.Context, _ uuid.UUID) (*tier.ServiceSubscription, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.subscription == nil {
		return nil, tier.ErrSubscriptionNotFound
	}
	return f.subscription, nil
}

func (f *fakeStore) GetServiceTier(_ context.Context, id uuid.UUID) (*tier.ServiceTier, error) {
	if f.err != nil {
		return nil, f.err
	}
	st, ok := f.serviceTiers[id]
	if !ok {
		return nil, tier.ErrServiceTierNotFound
	}
	return st, nil
}

func fixedReader(t *testing.T, counts map[usage.Resource]int64) *usage.Reader {
	t.Helper()
	registry := usage.NewRegistry()
	for res, n := range counts {
		registry.Register(res, func(context.Context, uuid.UUID) (int64, error) {
			return n, nil
		})
	}
	return usage.NewReader(registry)
}

func activeSubscription(workspaceID, tierID uuid.UUID) *tier.ServiceSubscription {
	periodEnd := time.Now().UTC().Add(24 * time.Hour)
	return &tier.ServiceSubscription{
		ID:               uuid.New(),
		WorkspaceID:      workspaceID,
		ServiceTierID:    tierID,
		Status:           tier.StatusActive,
		MonthlyPrice:     7900,
		ProviderSubID:    "sub_123",
		CurrentPeriodEnd: &periodEnd,
		CreatedAt:        time.Now().UTC().Add(-time.Hour),
		UpdatedAt:        time.Now().UTC(),
	}
}

func TestServiceWorkspaceOverview(t *testing.T) {
	t.Parallel()

	workspaceID := uuid.New()

	t.Run("no records resolves to free tier", func(t *testing.T) {
		t.Parallel()

		store := &fakeStore{}
		svc := tier.NewService(store, store, fixedReader(t, nil))

		overview, err := svc.WorkspaceOverview(context.Background(), workspaceID)
		require.NoError(t, err)

		assert.Equal(t, tier.SourceDefault, overview.Resolved.Source)
		assert.Equal(t, "free", overview.Resolved.Slug)
		assert.Nil(t, overview.Legacy)
		assert.Nil(t, overview.Subscription)
		assert.Nil(t, overview.ServiceTier)
		assert.Equal(t, usage.Snapshot{}, overview.Usage)
	})

	t.Run("active subscription resolves its tier", func(t *testing.T) {
		t.Parallel()

		svcTier := testServiceTier()
		store := &fakeStore{
			subscription: activeSubscription(workspaceID, svcTier.ID),
			serviceTiers: map[uuid.UUID]*tier.ServiceTier{svcTier.ID: &svcTier},
		}
		svc := tier.NewService(store, store, fixedReader(t, map[usage.Resource]int64{
			usage.ResourceDailyLeads:  12,
			usage.ResourceTeamMembers: 4,
		}))

		overview, err := svc.WorkspaceOverview(context.Background(), workspaceID)
		require.NoError(t, err)

		assert.Equal(t, tier.SourceService, overview.Resolved.Source)
		assert.Equal(t, "growth", overview.Resolved.Slug)
		require.NotNil(t, overview.Subscription)
		assert.Equal(t, int64(7900), overview.Subscription.MonthlyPrice)
		assert.Equal(t, int64(12), overview.Usage.DailyLeads)
		assert.Equal(t, int64(4), overview.Usage.TeamMembers)
	})

	t.Run("expired subscription is ignored", func(t *testing.T) {
		t.Parallel()

		svcTier := testServiceTier()
		sub := activeSubscription(workspaceID, svcTier.ID)
		past := time.Now().UTC().Add(-time.Hour)
		sub.CurrentPeriodEnd = &past
		store := &fakeStore{
			subscription: sub,
			serviceTiers: map[uuid.UUID]*tier.ServiceTier{svcTier.ID: &svcTier},
		}
		svc := tier.NewService(store, store, fixedReader(t, nil))

		overview, err := svc.WorkspaceOverview(context.Background(), workspaceID)
		require.NoError(t, err)

		assert.Equal(t, tier.SourceDefault, overview.Resolved.Source)
		assert.Nil(t, overview.Subscription)
	})

	t.Run("subscription with missing tier resolves without service model", func(t *testing.T) {
		t.Parallel()

		store := &fakeStore{
			subscription: activeSubscription(workspaceID, uuid.New()),
		}
		svc := tier.NewService(store, store, fixedReader(t, nil))

		overview, err := svc.WorkspaceOverview(context.Background(), workspaceID)
		require.NoError(t, err)

		assert.Equal(t, tier.SourceDefault, overview.Resolved.Source)
		assert.Nil(t, overview.Subscription)
		assert.Nil(t, overview.ServiceTier)
	})

	t.Run("infrastructure failure propagates", func(t *testing.T) {
		t.Parallel()

		infraErr := errors.New("connection refused")
		store := &fakeStore{err: errors.Join(tier.ErrFailedToFetchTier, infraErr)}
		svc := tier.NewService(store, store, fixedReader(t, nil))

		overview, err := svc.WorkspaceOverview(context.Background(), workspaceID)
		require.Error(t, err)
		assert.ErrorIs(t, err, tier.ErrFailedToFetchTier)
		assert.Nil(t, overview)
	})

	t.Run("usage failure propagates", func(t *testing.T) {
		t.Parallel()

		registry := usage.NewRegistry()
		registry.Register(usage.ResourceCampaigns, func(context.Context, uuid.UUID) (int64, error) {
			return 0, errors.New("query timeout")
		})
		store := &fakeStore{}
		svc := tier.NewService(store, store, usage.NewReader(registry))

		_, err := svc.WorkspaceOverview(context.Background(), workspaceID)
		require.Error(t, err)
		assert.ErrorIs(t, err, usage.ErrFailedToCountResource)
	})
}
