// api/model/provider.go
package model

// Provider is a configured upstream deals-data source. Exactly one provider
// is active at any time; whitelist and offer data are scoped to it.
type Provider struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	BaseURL string `json:"baseUrl"`
	APIKey  string `json:"-"`
	Active  bool   `json:"active"`
}

// WhitelistDomain is one whitelist record as stored by the deals provider.
// Only visible records grant access.
type WhitelistDomain struct {
	ID        string `json:"id"`
	Domain    string `json:"domain"`
	IsVisible bool   `json:"is_visible"`
}
