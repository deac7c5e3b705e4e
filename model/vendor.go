// api/model/vendor.go
package model

// Vendor and Offer are passed through from the deals provider unmodified
// apart from JSON field mapping; the portal does no normalization.
type Vendor struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	LogoURL     string   `json:"logo_url,omitempty"`
	Categories  []string `json:"categories,omitempty"`
}

type Offer struct {
	ID          string `json:"id"`
	VendorID    string `json:"vendor_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	RedeemURL   string `json:"redeem_url,omitempty"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
