package tier_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prospectly/platform/pkg/tier"
)

func boolPtr(b bool) *bool    { return &b }
func int64Ptr(n int64) *int64 { return &n }

func testProductTier() tier.ProductTier {
	return tier.ProductTier{
		ID:             uuid.New(),
		Name:           "Starter",
		Slug:           "starter",
		DailyLeadLimit: 25,
		Features: tier.FeatureOverrides{
			Campaigns:    boolPtr(true),
			TeamMembers:  int64Ptr(3),
			MaxCampaigns: int64Ptr(5),
		},
		PriceMonthly: 2900,
		PriceYearly:  29000,
	}
}

func testServiceTier() tier.ServiceTier {
	return tier.ServiceTier{
		ID:   uuid.New(),
		Name: "Growth",
		Slug: "growth",
		PlatformFeatures: tier.PlatformFeatures{
			Campaigns: boolPtr(true),
			AIAgents:  boolPtr(true),
			APIAccess: boolPtr(true),
			TeamSeats: int64Ptr(10),
		},
		MonthlyPrice: 9900,
	}
}

func TestResolve_NoTierAssigned(t *testing.T) {
	t.Parallel()

	resolved := tier.Resolve(nil, nil)

	assert.Equal(t, tier.SourceDefault, resolved.Source)
	assert.Equal(t, "free", resolved.Slug)
	assert.Equal(t, "Free", resolved.Name)
	assert.Equal(t, int64(3), resolved.Limits.Daily)
	assert.Nil(t, resolved.Limits.Monthly)

	f := resolved.Features
	assert.True(t, f.BasicSearch)
	assert.False(t, f.Campaigns)
	assert.False(t, f.AIAgents)
	assert.False(t, f.APIAccess)
	assert.False(t, f.WhiteLabel)
	assert.False(t, f.CustomDomains)
	assert.False(t, f.DedicatedSupport)
	assert.Equal(t, int64(1), f.TeamMembers)
	assert.Equal(t, int64(0), f.MaxCampaigns)
	assert.Equal(t, int64(0), f.MaxTemplates)
	assert.Equal(t, int64(1), f.MaxEmailAccounts)
}

func TestResolve_LegacyOnly(t *testing.T) {
	t.Parallel()

	t.Run("plan features overlay defaults", func(t *testing.T) {
		t.Parallel()

		legacy := &tier.WorkspaceTier{
			WorkspaceID: uuid.New(),
			Tier:        testProductTier(),
		}

		resolved := tier.Resolve(legacy, nil)

		assert.Equal(t, tier.SourceLegacy, resolved.Source)
		assert.Equal(t, legacy.Tier.ID.String(), resolved.ID)
		assert.Equal(t, "Starter", resolved.Name)
		assert.Equal(t, "starter", resolved.Slug)
		assert.True(t, resolved.Features.Campaigns)
		assert.Equal(t, int64(3), resolved.Features.TeamMembers)
		assert.Equal(t, int64(25), resolved.Limits.Daily)
		assert.True(t, resolved.Features.BasicSearch, "defaults survive where the plan is silent")
	})

	t.Run("workspace overrides win over plan", func(t *testing.T) {
		t.Parallel()

		pt := testProductTier()
		pt.Features.BasicSearch = boolPtr(false)
		legacy := &tier.WorkspaceTier{
			WorkspaceID: uuid.New(),
			Tier:        pt,
			FeatureOverrides: &tier.FeatureOverrides{
				Campaigns:   boolPtr(false),
				TeamMembers: int64Ptr(7),
			},
		}

		resolved := tier.Resolve(legacy, nil)

		assert.False(t, resolved.Features.BasicSearch, "plan may disable a default-enabled capability")
		assert.False(t, resolved.Features.Campaigns, "override wins over plan grant")
		assert.Equal(t, int64(7), resolved.Features.TeamMembers)
	})

	t.Run("limit overrides win over plan limits", func(t *testing.T) {
		t.Parallel()

		legacy := &tier.WorkspaceTier{
			WorkspaceID:              uuid.New(),
			Tier:                     testProductTier(),
			DailyLeadLimitOverride:   int64Ptr(100),
			MonthlyLeadLimitOverride: int64Ptr(2000),
		}

		resolved := tier.Resolve(legacy, nil)

		assert.Equal(t, int64(100), resolved.Limits.Daily)
		require.NotNil(t, resolved.Limits.Monthly)
		assert.Equal(t, int64(2000), *resolved.Limits.Monthly)
	})

	t.Run("plan monthly limit used without override", func(t *testing.T) {
		t.Parallel()

		pt := testProductTier()
		pt.MonthlyLeadLimit = int64Ptr(500)
		legacy := &tier.WorkspaceTier{WorkspaceID: uuid.New(), Tier: pt}

		resolved := tier.Resolve(legacy, nil)

		require.NotNil(t, resolved.Limits.Monthly)
		assert.Equal(t, int64(500), *resolved.Limits.Monthly)
	})
}

func TestResolve_ServiceWins(t *testing.T) {
	t.Parallel()

	legacy := &tier.WorkspaceTier{
		WorkspaceID: uuid.New(),
		Tier:        testProductTier(),
	}
	svc := testServiceTier()

	resolved := tier.Resolve(legacy, &svc)

	assert.Equal(t, tier.SourceService, resolved.Source)
	assert.Equal(t, "Growth", resolved.Name)
	assert.Equal(t, "growth", resolved.Slug)
	assert.Equal(t, legacy.Tier.ID.String(), resolved.ID, "legacy plan ID kept for billing references")

	assert.True(t, resolved.Features.DedicatedSupport, "any active service subscription grants support")
	assert.Equal(t, int64(10), resolved.Features.TeamMembers, "team_seats wins over legacy cap")
	assert.True(t, resolved.Features.AIAgents)
	assert.True(t, resolved.Features.APIAccess)
}

func TestResolve_ServiceOnly(t *testing.T) {
	t.Parallel()

	svc := testServiceTier()

	resolved := tier.Resolve(nil, &svc)

	assert.Equal(t, tier.SourceService, resolved.Source)
	assert.Equal(t, svc.ID.String(), resolved.ID)
	assert.Equal(t, "growth", resolved.Slug)
	assert.True(t, resolved.Features.DedicatedSupport)
	assert.Equal(t, int64(3), resolved.Limits.Daily, "no daily limit in bundle falls back to default")
}

func TestResolve_ServiceDailyLimit(t *testing.T) {
	t.Parallel()

	t.Run("overrides legacy daily limit", func(t *testing.T) {
		t.Parallel()

		legacy := &tier.WorkspaceTier{
			WorkspaceID:            uuid.New(),
			Tier:                   testProductTier(),
			DailyLeadLimitOverride: int64Ptr(100),
		}
		svc := testServiceTier()
		svc.PlatformFeatures.DailyLeadLimit = int64Ptr(250)

		resolved := tier.Resolve(legacy, &svc)

		assert.Equal(t, int64(250), resolved.Limits.Daily, "service limit wins last")
	})

	t.Run("unlimited sentinel becomes large finite number", func(t *testing.T) {
		t.Parallel()

		svc := testServiceTier()
		svc.PlatformFeatures.DailyLeadLimit = int64Ptr(-1)

		resolved := tier.Resolve(nil, &svc)

		assert.Equal(t, int64(999999), resolved.Limits.Daily)
		assert.GreaterOrEqual(t, resolved.Limits.Daily, int64(0), "never negative downstream")
	})

	t.Run("custom integrations maps to custom domains", func(t *testing.T) {
		t.Parallel()

		svc := testServiceTier()
		svc.PlatformFeatures.CustomIntegrations = boolPtr(true)
		svc.PlatformFeatures.WhiteLabel = boolPtr(true)

		resolved := tier.Resolve(nil, &svc)

		assert.True(t, resolved.Features.CustomDomains)
		assert.True(t, resolved.Features.WhiteLabel)
	})
}
