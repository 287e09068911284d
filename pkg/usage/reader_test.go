package usage_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prospectly/platform/pkg/usage"
)

func staticCounter(n int64) usage.CounterFunc {
	return func(context.Context, uuid.UUID) (int64, error) { return n, nil }
}

func TestReaderSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("all counters registered", func(t *testing.T) {
		t.Parallel()

		registry := usage.NewRegistry()
		registry.Register(usage.ResourceDailyLeads, staticCounter(4))
		registry.Register(usage.ResourceMonthlyLeads, staticCounter(42))
		registry.Register(usage.ResourceTeamMembers, staticCounter(3))
		registry.Register(usage.ResourceCampaigns, staticCounter(7))
		registry.Register(usage.ResourceTemplates, staticCounter(12))
		registry.Register(usage.ResourceEmailAccounts, staticCounter(2))

		snap, err := usage.NewReader(registry).Snapshot(context.Background(), uuid.New())
		require.NoError(t, err)

		assert.Equal(t, usage.Snapshot{
			DailyLeads:    4,
			MonthlyLeads:  42,
			TeamMembers:   3,
			Campaigns:     7,
			Templates:     12,
			EmailAccounts: 2,
		}, snap)
	})

	t.Run("missing counters report zero", func(t *testing.T) {
		t.Parallel()

		registry := usage.NewRegistry()
		registry.Register(usage.ResourceCampaigns, staticCounter(5))

		snap, err := usage.NewReader(registry).Snapshot(context.Background(), uuid.New())
		require.NoError(t, err)

		assert.Equal(t, int64(5), snap.Campaigns)
		assert.Zero(t, snap.DailyLeads)
		assert.Zero(t, snap.TeamMembers)
	})

	t.Run("single counter failure fails the snapshot", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("connection refused")
		registry := usage.NewRegistry()
		registry.Register(usage.ResourceDailyLeads, staticCounter(1))
		registry.Register(usage.ResourceCampaigns, func(context.Context, uuid.UUID) (int64, error) {
			return 0, boom
		})

		_, err := usage.NewReader(registry).Snapshot(context.Background(), uuid.New())
		require.Error(t, err)
		assert.ErrorIs(t, err, usage.ErrFailedToCountResource)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("counters receive the workspace id", func(t *testing.T) {
		t.Parallel()

		workspaceID := uuid.New()
		var calls atomic.Int64

		counter := func(_ context.Context, gotID uuid.UUID) (int64, error) {
			assert.Equal(t, workspaceID, gotID)
			calls.Add(1)
			return 1, nil
		}

		registry := usage.NewRegistry()
		registry.Register(usage.ResourceTemplates, counter)
		registry.Register(usage.ResourceEmailAccounts, counter)

		_, err := usage.NewReader(registry).Snapshot(context.Background(), workspaceID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), calls.Load())
	})
}

func TestNewReaderPanicsOnNilRegistry(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { usage.NewReader(nil) })
}
