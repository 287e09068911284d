package tier

// Source tags which subscription model produced the resolved tier
// identity. Encoding the precedence outcome in the type keeps callers from
// re-deriving it with null checks.
type Source string

const (
	SourceService Source = "service"
	SourceLegacy  Source = "legacy"
	SourceDefault Source = "default"
)

const (
	// DefaultDailyLeadLimit applies when neither a workspace override nor
	// a plan limit exists.
	DefaultDailyLeadLimit int64 = 3

	// Unlimited is the sentinel service tiers use for "no daily cap".
	Unlimited int64 = -1

	// UnlimitedDailyLeads replaces the Unlimited sentinel so downstream
	// consumers never see a negative limit.
	UnlimitedDailyLeads int64 = 999999
)

// FallbackTierName and FallbackTierSlug identify workspaces with no tier
// assignment in either model.
const (
	FallbackTierName = "Free"
	FallbackTierSlug = "free"
)

// Limits is the resolved lead-limit pair. Monthly is nil when no policy
// bounds it, which is distinct from the service model's numeric sentinel.
type Limits struct {
	Daily   int64
	Monthly *int64
}

// ResolvedTier is the single effective tier for a workspace after
// reconciling the legacy and service models.
type ResolvedTier struct {
	Source   Source
	ID       string
	Name     string
	Slug     string
	Features Features
	Limits   Limits
}

// Resolve merges the two subscription models into one effective tier.
// Both inputs may be nil; svcTier must only be non-nil when an active
// service subscription references it.
//
// Feature layers, lowest to highest precedence: built-in defaults, legacy
// plan features, workspace overrides, service-tier platform features.
// Every active service subscription also grants dedicated support,
// independent of the tier's bundle.
func Resolve(legacy *WorkspaceTier, svcTier *ServiceTier) ResolvedTier {
	features := DefaultFeatures()
	if legacy != nil {
		features = features.Apply(&legacy.Tier.Features)
		features = features.Apply(legacy.FeatureOverrides)
	}
	if svcTier != nil {
		features = features.ApplyPlatform(svcTier.PlatformFeatures)
		features.DedicatedSupport = true
	}

	limits := resolveLimits(legacy, svcTier)

	resolved := ResolvedTier{
		Source:   SourceDefault,
		ID:       FallbackTierSlug,
		Name:     FallbackTierName,
		Slug:     FallbackTierSlug,
		Features: features,
		Limits:   limits,
	}

	if legacy != nil {
		resolved.Source = SourceLegacy
		resolved.ID = legacy.Tier.ID.String()
		resolved.Name = legacy.Tier.Name
		resolved.Slug = legacy.Tier.Slug
	}
	if svcTier != nil {
		// Service identity wins, but the legacy plan ID is kept when
		// present so billing references stay stable across model
		// migration.
		resolved.Source = SourceService
		if legacy == nil {
			resolved.ID = svcTier.ID.String()
		}
		resolved.Name = svcTier.Name
		resolved.Slug = svcTier.Slug
	}

	return resolved
}

func resolveLimits(legacy *WorkspaceTier, svcTier *ServiceTier) Limits {
	daily := DefaultDailyLeadLimit
	var monthly *int64

	if legacy != nil {
		if legacy.DailyLeadLimitOverride != nil {
			daily = *legacy.DailyLeadLimitOverride
		} else {
			daily = legacy.Tier.DailyLeadLimit
		}
		if legacy.MonthlyLeadLimitOverride != nil {
			monthly = legacy.MonthlyLeadLimitOverride
		} else {
			monthly = legacy.Tier.MonthlyLeadLimit
		}
	}

	// The service tier's daily limit wins last when it defines one.
	if svcTier != nil && svcTier.PlatformFeatures.DailyLeadLimit != nil {
		daily = *svcTier.PlatformFeatures.DailyLeadLimit
		if daily == Unlimited {
			daily = UnlimitedDailyLeads
		}
	}

	return Limits{Daily: daily, Monthly: monthly}
}
