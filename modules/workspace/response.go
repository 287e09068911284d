package workspace

import (
	"time"

	"github.com/prospectly/platform/pkg/tier"
)

// tierResponse is the success envelope for GET /tier. Every top-level key
// is always present; serviceTier and subscription are explicit nulls when
// the corresponding model has no record.
type tierResponse struct {
	Success      bool                 `json:"success"`
	Tier         tierPayload          `json:"tier"`
	ServiceTier  *serviceTierPayload  `json:"serviceTier"`
	Limits       limitsPayload        `json:"limits"`
	Usage        usagePayload         `json:"usage"`
	Subscription *subscriptionPayload `json:"subscription"`
}

type tierPayload struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Slug         string        `json:"slug"`
	Features     tier.Features `json:"features"`
	PriceMonthly int64         `json:"priceMonthly"`
	PriceYearly  int64         `json:"priceYearly"`
}

type serviceTierPayload struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	MonthlyPrice int64  `json:"monthlyPrice"`
}

type limitsPayload struct {
	Daily   int64  `json:"daily"`
	Monthly *int64 `json:"monthly"`
}

type usagePayload struct {
	DailyLeadsUsed    int64 `json:"dailyLeadsUsed"`
	MonthlyLeadsUsed  int64 `json:"monthlyLeadsUsed"`
	TeamMembersUsed   int64 `json:"teamMembersUsed"`
	CampaignsUsed     int64 `json:"campaignsUsed"`
	TemplatesUsed     int64 `json:"templatesUsed"`
	EmailAccountsUsed int64 `json:"emailAccountsUsed"`
}

type subscriptionPayload struct {
	Status            string     `json:"status"`
	BillingCycle      string     `json:"billingCycle"`
	TrialEndsAt       *time.Time `json:"trialEndsAt"`
	CurrentPeriodEnd  *time.Time `json:"currentPeriodEnd"`
	CancelAtPeriodEnd bool       `json:"cancelAtPeriodEnd"`
}

func newTierResponse(o *tier.Overview) tierResponse {
	resp := tierResponse{
		Success: true,
		Tier: tierPayload{
			ID:       o.Resolved.ID,
			Name:     o.Resolved.Name,
			Slug:     o.Resolved.Slug,
			Features: o.Resolved.Features,
		},
		Limits: limitsPayload{
			Daily:   o.Resolved.Limits.Daily,
			Monthly: o.Resolved.Limits.Monthly,
		},
		Usage: usagePayload{
			DailyLeadsUsed:    o.Usage.DailyLeads,
			MonthlyLeadsUsed:  o.Usage.MonthlyLeads,
			TeamMembersUsed:   max(o.Usage.TeamMembers, 1),
			CampaignsUsed:     o.Usage.Campaigns,
			TemplatesUsed:     o.Usage.Templates,
			EmailAccountsUsed: o.Usage.EmailAccounts,
		},
	}

	// List prices come from the legacy plan only; the service model bills
	// through its subscription's contracted price.
	if o.Legacy != nil {
		resp.Tier.PriceMonthly = o.Legacy.Tier.PriceMonthly
		resp.Tier.PriceYearly = o.Legacy.Tier.PriceYearly
		resp.Subscription = &subscriptionPayload{
			Status:            string(o.Legacy.Status),
			BillingCycle:      string(o.Legacy.BillingCycle),
			TrialEndsAt:       o.Legacy.TrialEndsAt,
			CurrentPeriodEnd:  o.Legacy.CurrentPeriodEnd,
			CancelAtPeriodEnd: o.Legacy.CancelAtPeriodEnd,
		}
	}

	if o.ServiceTier != nil && o.Subscription != nil {
		resp.ServiceTier = &serviceTierPayload{
			ID:           o.ServiceTier.ID.String(),
			Name:         o.ServiceTier.Name,
			Slug:         o.ServiceTier.Slug,
			MonthlyPrice: o.Subscription.MonthlyPrice,
		}
	}

	return resp
}
