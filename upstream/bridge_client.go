// api/upstream/bridge_client.go

package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// BridgeClient talks to the Bridge network-graph API. The portfolio search
// endpoint is unauthenticated, so requests are paced with a client-side rate
// limiter to stay polite toward the upstream.
type BridgeClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewBridgeClient(baseURL string) *BridgeClient {
	return &BridgeClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(10), 10), // 10 req/s burst 10
	}
}

// PortfolioRecord is one portfolio company in a search result page.
type PortfolioRecord struct {
	ID         string `json:"id"`
	Attributes struct {
		Domain string `json:"domain"`
		Name   string `json:"name"`
	} `json:"attributes"`
}

type portfolioSearchResponse struct {
	Data []PortfolioRecord `json:"data"`
}

// SearchNetworkPortfolios fetches one page of portfolio companies affiliated
// with the given VC domain.
func (c *BridgeClient) SearchNetworkPortfolios(ctx context.Context, vcDomain string, limit, offset int) ([]PortfolioRecord, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("domain", vcDomain)
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("offset", fmt.Sprintf("%d", offset))
	endpoint := fmt.Sprintf("%s/search/network_portfolios?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bridge API returned status %d", resp.StatusCode)
	}

	var parsed portfolioSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return parsed.Data, nil
}
