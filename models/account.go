package models

// Account represents the subset of a graphene account object (1.2.x) that the
// beautifier needs. Ref: database API get_objects response.
type Account struct {
	ID                       string         `json:"id"`
	Name                     string         `json:"name"`
	Registrar                string         `json:"registrar,omitempty"`
	Referrer                 string         `json:"referrer,omitempty"`
	LifetimeReferrer         string         `json:"lifetime_referrer,omitempty"`
	MembershipExpirationDate string         `json:"membership_expiration_date,omitempty"`
	NetworkFeePercentage     uint32         `json:"network_fee_percentage,omitempty"`
	Options                  AccountOptions `json:"options,omitempty"`
}

type AccountOptions struct {
	MemoKey       string `json:"memo_key,omitempty"`
	VotingAccount string `json:"voting_account,omitempty"`
}
