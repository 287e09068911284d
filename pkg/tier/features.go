package tier

// Features is the effective capability set for a workspace after all
// layers have been merged. The schema is closed: overlays may flip or
// raise values for these keys but can never remove one.
type Features struct {
	BasicSearch      bool  `json:"basic_search" yaml:"basic_search"`
	Campaigns        bool  `json:"campaigns" yaml:"campaigns"`
	AIAgents         bool  `json:"ai_agents" yaml:"ai_agents"`
	APIAccess        bool  `json:"api_access" yaml:"api_access"`
	WhiteLabel       bool  `json:"white_label" yaml:"white_label"`
	CustomDomains    bool  `json:"custom_domains" yaml:"custom_domains"`
	DedicatedSupport bool  `json:"dedicated_support" yaml:"dedicated_support"`
	TeamMembers      int64 `json:"team_members" yaml:"team_members"`
	MaxCampaigns     int64 `json:"max_campaigns" yaml:"max_campaigns"`
	MaxTemplates     int64 `json:"max_templates" yaml:"max_templates"`
	MaxEmailAccounts int64 `json:"max_email_accounts" yaml:"max_email_accounts"`
}

// FeatureOverrides is a sparse overlay over Features. Nil fields contribute
// nothing; non-nil fields win over the layer below. Both product tier
// feature sets and per-workspace overrides use this shape, so plan data and
// manual exceptions merge through the same code path.
type FeatureOverrides struct {
	BasicSearch      *bool  `json:"basic_search,omitempty"`
	Campaigns        *bool  `json:"campaigns,omitempty"`
	AIAgents         *bool  `json:"ai_agents,omitempty"`
	APIAccess        *bool  `json:"api_access,omitempty"`
	WhiteLabel       *bool  `json:"white_label,omitempty"`
	CustomDomains    *bool  `json:"custom_domains,omitempty"`
	DedicatedSupport *bool  `json:"dedicated_support,omitempty"`
	TeamMembers      *int64 `json:"team_members,omitempty"`
	MaxCampaigns     *int64 `json:"max_campaigns,omitempty"`
	MaxTemplates     *int64 `json:"max_templates,omitempty"`
	MaxEmailAccounts *int64 `json:"max_email_accounts,omitempty"`
}

// PlatformFeatures is the feature bundle attached to a service tier. Its
// vocabulary differs from Features and is translated during resolution:
// team_seats maps to the team member cap and custom_integrations to the
// custom domains flag. Nil fields fall back to the legacy-resolved value.
type PlatformFeatures struct {
	Campaigns          *bool  `json:"campaigns,omitempty"`
	AIAgents           *bool  `json:"ai_agents,omitempty"`
	APIAccess          *bool  `json:"api_access,omitempty"`
	TeamSeats          *int64 `json:"team_seats,omitempty"`
	WhiteLabel         *bool  `json:"white_label,omitempty"`
	CustomIntegrations *bool  `json:"custom_integrations,omitempty"`
	DailyLeadLimit     *int64 `json:"daily_lead_limit,omitempty"`
}

// Apply returns a copy of f with every non-nil override applied. A nil
// overrides value returns f unchanged.
func (f Features) Apply(o *FeatureOverrides) Features {
	if o == nil {
		return f
	}
	if o.BasicSearch != nil {
		f.BasicSearch = *o.BasicSearch
	}
	if o.Campaigns != nil {
		f.Campaigns = *o.Campaigns
	}
	if o.AIAgents != nil {
		f.AIAgents = *o.AIAgents
	}
	if o.APIAccess != nil {
		f.APIAccess = *o.APIAccess
	}
	if o.WhiteLabel != nil {
		f.WhiteLabel = *o.WhiteLabel
	}
	if o.CustomDomains != nil {
		f.CustomDomains = *o.CustomDomains
	}
	if o.DedicatedSupport != nil {
		f.DedicatedSupport = *o.DedicatedSupport
	}
	if o.TeamMembers != nil {
		f.TeamMembers = *o.TeamMembers
	}
	if o.MaxCampaigns != nil {
		f.MaxCampaigns = *o.MaxCampaigns
	}
	if o.MaxTemplates != nil {
		f.MaxTemplates = *o.MaxTemplates
	}
	if o.MaxEmailAccounts != nil {
		f.MaxEmailAccounts = *o.MaxEmailAccounts
	}
	return f
}

// ApplyPlatform returns a copy of f with the service tier bundle translated
// into the Features vocabulary and applied on top.
func (f Features) ApplyPlatform(p PlatformFeatures) Features {
	if p.Campaigns != nil {
		f.Campaigns = *p.Campaigns
	}
	if p.AIAgents != nil {
		f.AIAgents = *p.AIAgents
	}
	if p.APIAccess != nil {
		f.APIAccess = *p.APIAccess
	}
	if p.TeamSeats != nil {
		f.TeamMembers = *p.TeamSeats
	}
	if p.WhiteLabel != nil {
		f.WhiteLabel = *p.WhiteLabel
	}
	if p.CustomIntegrations != nil {
		f.CustomDomains = *p.CustomIntegrations
	}
	return f
}
