package tier

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements TierStore, SubscriptionStore, and
// SubscriptionWriter over a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a PostgresStore. Panics on a nil pool to fail
// fast during initialization.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	if pool == nil {
		panic("tier: pgxpool.Pool is required")
	}
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) GetWorkspaceTier(ctx context.Context, workspaceID uuid.UUID) (*WorkspaceTier, error) {
	const query = `
		SELECT
			wt.workspace_id,
			wt.feature_overrides,
			wt.daily_lead_limit_override,
			wt.monthly_lead_limit_override,
			wt.status,
			wt.billing_cycle,
			wt.trial_ends_at,
			wt.current_period_end,
			wt.cancel_at_period_end,
			pt.id,
			pt.name,
			pt.slug,
			pt.daily_lead_limit,
			pt.monthly_lead_limit,
			pt.features,
			pt.price_monthly,
			pt.price_yearly
		FROM workspace_tiers wt
		JOIN product_tiers pt ON pt.id = wt.product_tier_id
		WHERE wt.workspace_id = $1`

	var (
		wt           WorkspaceTier
		overridesRaw []byte
		featuresRaw  []byte
	)
	err := s.pool.QueryRow(ctx, query, workspaceID).Scan(
		&wt.WorkspaceID,
		&overridesRaw,
		&wt.DailyLeadLimitOverride,
		&wt.MonthlyLeadLimitOverride,
		&wt.Status,
		&wt.BillingCycle,
		&wt.TrialEndsAt,
		&wt.CurrentPeriodEnd,
		&wt.CancelAtPeriodEnd,
		&wt.Tier.ID,
		&wt.Tier.Name,
		&wt.Tier.Slug,
		&wt.Tier.DailyLeadLimit,
		&wt.Tier.MonthlyLeadLimit,
		&featuresRaw,
		&wt.Tier.PriceMonthly,
		&wt.Tier.PriceYearly,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTierNotFound
		}
		return nil, errors.Join(ErrFailedToFetchTier, err)
	}

	if len(featuresRaw) > 0 {
		if err := json.Unmarshal(featuresRaw, &wt.Tier.Features); err != nil {
			return nil, errors.Join(ErrFailedToFetchTier, err)
		}
	}
	if len(overridesRaw) > 0 {
		var o FeatureOverrides
		if err := json.Unmarshal(overridesRaw, &o); err != nil {
			return nil, errors.Join(ErrFailedToFetchTier, err)
		}
		wt.FeatureOverrides = &o
	}

	return &wt, nil
}

func (s *PostgresStore) GetActiveSubscription(ctx context.Context, workspaceID uuid.UUID) (*ServiceSubscription, error) {
	const query = `
		SELECT
			id,
			workspace_id,
			service_tier_id,
			status,
			monthly_price,
			provider_subscription_id,
			current_period_start,
			current_period_end,
			created_at,
			updated_at,
			cancelled_at
		FROM service_subscriptions
		WHERE workspace_id = $1
		  AND status IN ('active', 'trialing')
		  AND (current_period_end IS NULL OR current_period_end > now())
		ORDER BY created_at DESC
		LIMIT 1`

	var sub ServiceSubscription
	err := s.pool.QueryRow(ctx, query, workspaceID).Scan(
		&sub.ID,
		&sub.WorkspaceID,
		&sub.ServiceTierID,
		&sub.Status,
		&sub.MonthlyPrice,
		&sub.ProviderSubID,
		&sub.CurrentPeriodStart,
		&sub.CurrentPeriodEnd,
		&sub.CreatedAt,
		&sub.UpdatedAt,
		&sub.CancelledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, errors.Join(ErrFailedToFetchTier, err)
	}
	return &sub, nil
}

func (s *PostgresStore) GetServiceTier(ctx context.Context, id uuid.UUID) (*ServiceTier, error) {
	const query = `
		SELECT id, name, slug, platform_features, monthly_price
		FROM service_tiers
		WHERE id = $1`

	var (
		st          ServiceTier
		featuresRaw []byte
	)
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&st.ID,
		&st.Name,
		&st.Slug,
		&featuresRaw,
		&st.MonthlyPrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrServiceTierNotFound
		}
		return nil, errors.Join(ErrFailedToFetchTier, err)
	}

	if len(featuresRaw) > 0 {
		if err := json.Unmarshal(featuresRaw, &st.PlatformFeatures); err != nil {
			return nil, errors.Join(ErrFailedToFetchTier, err)
		}
	}
	return &st, nil
}

func (s *PostgresStore) SaveSubscription(ctx context.Context, sub *ServiceSubscription) error {
	const query = `
		INSERT INTO service_subscriptions (
			id, workspace_id, service_tier_id, status, monthly_price,
			provider_subscription_id, current_period_start, current_period_end,
			created_at, updated_at, cancelled_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (provider_subscription_id) DO UPDATE SET
			service_tier_id      = EXCLUDED.service_tier_id,
			status               = EXCLUDED.status,
			monthly_price        = EXCLUDED.monthly_price,
			current_period_start = EXCLUDED.current_period_start,
			current_period_end   = EXCLUDED.current_period_end,
			updated_at           = EXCLUDED.updated_at,
			cancelled_at         = EXCLUDED.cancelled_at`

	_, err := s.pool.Exec(ctx, query,
		sub.ID,
		sub.WorkspaceID,
		sub.ServiceTierID,
		sub.Status,
		sub.MonthlyPrice,
		sub.ProviderSubID,
		sub.CurrentPeriodStart,
		sub.CurrentPeriodEnd,
		sub.CreatedAt,
		sub.UpdatedAt,
		sub.CancelledAt,
	)
	if err != nil {
		return errors.Join(ErrFailedToSaveSubscription, err)
	}
	return nil
}
