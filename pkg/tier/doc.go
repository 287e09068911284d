// Package tier resolves a workspace's effective subscription tier by
// reconciling two overlapping plan models: the legacy product-tier model
// and the newer service-tier model.
//
// The package computes one effective feature set and lead-limit pair per
// workspace from layered sources, lowest to highest precedence:
//
//   - built-in defaults (embedded defaults.yaml)
//   - legacy plan features
//   - workspace-level feature overrides
//   - service-tier platform features, when a service subscription is active
//
// Each layer overlays the one below it; absent keys contribute nothing.
// The resolved tier carries an explicit Source variant so callers never
// re-derive the precedence outcome with null checks.
//
// # Core Components
//
//   - Resolve: pure merge of the two tier records into a ResolvedTier
//   - Service: fetches records and usage, returns a complete Overview
//   - TierStore, SubscriptionStore: read interfaces over persisted records
//   - PostgresStore: pgx-backed implementation of all store interfaces
//
// # Quick Start
//
//	store := tier.NewPostgresStore(pool)
//	svc := tier.NewService(store, store, usageReader)
//
//	overview, err := svc.WorkspaceOverview(ctx, workspaceID)
//	if err != nil {
//		// infrastructure failure; missing records are not errors
//	}
//
//	overview.Resolved.Slug     // "free" when no tier is assigned
//	overview.Resolved.Features // merged feature set
//	overview.Resolved.Limits   // {Daily, Monthly} lead limits
//
// # Limit Semantics
//
// The daily lead limit resolves as workspace override, else legacy plan
// limit, else 3. A service tier's daily_lead_limit, when set, wins last;
// its -1 sentinel is translated to 999999 so downstream consumers never
// see a negative limit. The monthly limit resolves as workspace override,
// else legacy plan limit, else nil (unbounded by policy).
//
// # Error Handling
//
// Missing records return typed sentinels (ErrTierNotFound,
// ErrSubscriptionNotFound, ErrServiceTierNotFound) that the Service layer
// converts to nil inputs; a workspace absent from both models resolves to
// the free tier. Only infrastructure failures propagate to callers.
package tier
