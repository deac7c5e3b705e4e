// api/model/access.go
package model

// AccessReason labels the branch of the decision tree that produced a result.
type AccessReason string

const (
	ReasonAdmin          AccessReason = "admin"
	ReasonVCTeam         AccessReason = "vc_team"
	ReasonPortfolioMatch AccessReason = "portfolio_match"
	ReasonManualGrant    AccessReason = "manual_grant"
	ReasonDenied         AccessReason = "denied"
)

// AccessStatus is the record produced by one run of the access decision tree.
// CheckedAt always reflects the moment of the actual computation, never the
// moment a cached copy was read back.
type AccessStatus struct {
	Granted         bool         `json:"granted"`
	Reason          AccessReason `json:"reason"`
	MatchedDomain   string       `json:"matchedDomain,omitempty"`
	MatchedVCDomain string       `json:"matchedVcDomain,omitempty"`
	CheckedAt       string       `json:"checkedAt"`
	ProviderID      string       `json:"providerId"`
}
