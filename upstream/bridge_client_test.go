// api/upstream/bridge_client_test.go

package upstream_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akshayraj/perks-portal/api/upstream"
)

func TestSearchNetworkPortfoliosParsesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/network_portfolios", r.URL.Path)
		assert.Equal(t, "acme-vc.com", r.URL.Query().Get("domain"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		assert.Equal(t, "200", r.URL.Query().Get("offset"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":[
			{"id":"1","attributes":{"domain":"startupx.com","name":"StartupX"}},
			{"id":"2","attributes":{"domain":"betaco.io","name":"BetaCo"}}
		]}`)
	}))
	defer server.Close()

	client := upstream.NewBridgeClient(server.URL)
	records, err := client.SearchNetworkPortfolios(context.Background(), "acme-vc.com", 100, 200)

	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "startupx.com", records[0].Attributes.Domain)
	assert.Equal(t, "betaco.io", records[1].Attributes.Domain)
}

func TestSearchNetworkPortfoliosNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := upstream.NewBridgeClient(server.URL)
	_, err := client.SearchNetworkPortfolios(context.Background(), "acme-vc.com", 100, 0)

	assert.Error(t, err)
}
