// api/model/user.go
package model

// UserIdentity is supplied fresh per request by the identity middleware.
// ConnectedDomains holds the user's verified work-email domains, lowercased,
// with personal-email providers already excluded. The engine never mutates it.
type UserIdentity struct {
	ID               string   `json:"id"`
	Email            string   `json:"email"`
	IsAdmin          bool     `json:"isAdmin"`
	ConnectedDomains []string `json:"connectedDomains"`
}
