// api/upstream/proven_client_test.go

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

func TestGetWhitelistDomainsSendsAuthAndParses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/providers/p1/whitelist/domains", r.URL.Path)
		assert.Equal(t, "Bearer secret-key", r.Header.Get("Authorization"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "500", r.URL.Query().Get("page_size"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":[
			{"id":"d1","domain":"acme-vc.com","is_visible":true},
			{"id":"d2","domain":"hidden-vc.com","is_visible":false}
		],"pagination":{"page":1,"page_size":500,"total_count":2}}`)
	}))
	defer server.Close()

	client := upstream.NewProvenClient(server.URL, "secret-key")
	records, err := client.GetWhitelistDomains(context.Background(), "p1", 1, 500)

	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "acme-vc.com", records[0].Domain)
	assert.True(t, records[0].IsVisible)
	assert.False(t, records[1].IsVisible)
}

func TestGetWhitelistDomainsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := upstream.NewProvenClient(server.URL, "wrong-key")
	_, err := client.GetWhitelistDomains(context.Background(), "p1", 1, 500)

	assert.Error(t, err)
}
