// api/upstream/proven_client.go

package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/akshayraj/perks-portal/api/model"
)

// ProvenClient talks to the GetProven deals API. All data is scoped to a
// provider ID, which the portal treats as opaque.
type ProvenClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewProvenClient(baseURL, apiKey string) *ProvenClient {
	return &ProvenClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}

type whitelistDomainsResponse struct {
	Data       []model.WhitelistDomain `json:"data"`
	Pagination Pagination              `json:"pagination"`
}

// GetWhitelistDomains fetches one page of whitelist domain records for the
// provider. Callers that want the full set use a single large page; whitelist
// sizes are small and bounded.
func (c *ProvenClient) GetWhitelistDomains(ctx context.Context, providerID string, page, pageSize int) ([]model.WhitelistDomain, error) {
	endpoint := fmt.Sprintf("%s/providers/%s/whitelist/domains?page=%d&page_size=%d",
		c.baseURL, url.PathEscape(providerID), page, pageSize)

	var resp whitelistDomainsResponse
	if err := c.doGet(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch whitelist domains: %w", err)
	}
	return resp.Data, nil
}

// AddWhitelistDomain creates a whitelist record for the provider.
func (c *ProvenClient) AddWhitelistDomain(ctx context.Context, providerID string, domain model.WhitelistDomain) (*model.WhitelistDomain, error) {
	endpoint := fmt.Sprintf("%s/providers/%s/whitelist/domains", c.baseURL, url.PathEscape(providerID))

	var created model.WhitelistDomain
	if err := c.doJSON(ctx, http.MethodPost, endpoint, domain, &created); err != nil {
		return nil, fmt.Errorf("failed to add whitelist domain: %w", err)
	}
	return &created, nil
}

// DeleteWhitelistDomain removes a whitelist record by ID.
func (c *ProvenClient) DeleteWhitelistDomain(ctx context.Context, providerID, domainID string) error {
	endpoint := fmt.Sprintf("%s/providers/%s/whitelist/domains/%s",
		c.baseURL, url.PathEscape(providerID), url.PathEscape(domainID))

	if err := c.doJSON(ctx, http.MethodDelete, endpoint, nil, nil); err != nil {
		return fmt.Errorf("failed to delete whitelist domain: %w", err)
	}
	return nil
}

type vendorsResponse struct {
	Data       []model.Vendor `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

type offersResponse struct {
	Data       []model.Offer `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

type categoriesResponse struct {
	Data []model.Category `json:"data"`
}

// ListVendors fetches one page of vendors for the provider.
func (c *ProvenClient) ListVendors(ctx context.Context, providerID string, page, pageSize int) ([]model.Vendor, error) {
	endpoint := fmt.Sprintf("%s/providers/%s/vendors?page=%d&page_size=%d",
		c.baseURL, url.PathEscape(providerID), page, pageSize)

	var resp vendorsResponse
	if err := c.doGet(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch vendors: %w", err)
	}
	return resp.Data, nil
}

// ListOffers fetches one page of offers for the provider. An empty vendorID
// returns offers across all vendors.
func (c *ProvenClient) ListOffers(ctx context.Context, providerID, vendorID string, page, pageSize int) ([]model.Offer, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("page_size", strconv.Itoa(pageSize))
	if vendorID != "" {
		params.Set("vendor_id", vendorID)
	}
	endpoint := fmt.Sprintf("%s/providers/%s/offers?%s", c.baseURL, url.PathEscape(providerID), params.Encode())

	var resp offersResponse
	if err := c.doGet(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch offers: %w", err)
	}
	return resp.Data, nil
}

// ListCategories fetches the vendor categories configured for the provider.
func (c *ProvenClient) ListCategories(ctx context.Context, providerID string) ([]model.Category, error) {
	endpoint := fmt.Sprintf("%s/providers/%s/categories", c.baseURL, url.PathEscape(providerID))

	var resp categoriesResponse
	if err := c.doGet(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return resp.Data, nil
}

func (c *ProvenClient) doGet(ctx context.Context, endpoint string, out interface{}) error {
	return c.doJSON(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *ProvenClient) doJSON(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reqBody *http.Request
	var err error

	if body != nil {
		payload, merr := json.Marshal(body)
		if merr != nil {
			return fmt.Errorf("failed to marshal request body: %w", merr)
		}
		reqBody, err = http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(payload))
	} else {
		reqBody, err = http.NewRequestWithContext(ctx, method, endpoint, nil)
	}
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	reqBody.Header.Set("Authorization", "Bearer "+c.apiKey)
	reqBody.Header.Set("Accept", "application/json")
	if body != nil {
		reqBody.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(reqBody)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("proven API returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
