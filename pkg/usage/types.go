package usage

// Resource identifies a countable workspace resource.
type Resource string

const (
	ResourceDailyLeads    Resource = "leads_daily"
	ResourceMonthlyLeads  Resource = "leads_monthly"
	ResourceTeamMembers   Resource = "team_members"
	ResourceCampaigns     Resource = "campaigns"
	ResourceTemplates     Resource = "templates"
	ResourceEmailAccounts Resource = "email_accounts"
)

// allResources lists every resource a Snapshot reports, in a fixed order.
var allResources = []Resource{
	ResourceDailyLeads,
	ResourceMonthlyLeads,
	ResourceTeamMembers,
	ResourceCampaigns,
	ResourceTemplates,
	ResourceEmailAccounts,
}

// Snapshot holds the per-workspace usage counters taken for a single
// request. Counters are always counted fresh; they are never cached.
type Snapshot struct {
	DailyLeads    int64
	MonthlyLeads  int64
	TeamMembers   int64
	Campaigns     int64
	Templates     int64
	EmailAccounts int64
}

func (s *Snapshot) set(res Resource, n int64) {
	switch res {
	case ResourceDailyLeads:
		s.DailyLeads = n
	case ResourceMonthlyLeads:
		s.MonthlyLeads = n
	case ResourceTeamMembers:
		s.TeamMembers = n
	case ResourceCampaigns:
		s.Campaigns = n
	case ResourceTemplates:
		s.Templates = n
	case ResourceEmailAccounts:
		s.EmailAccounts = n
	}
}
