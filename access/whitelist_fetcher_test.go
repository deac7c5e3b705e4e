// api/access/whitelist_fetcher_test.go

package access_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/akshayraj/perks-portal/api/access"
	"github.com/akshayraj/perks-portal/api/model"
)

func TestWhitelistFiltersAndNormalizes(t *testing.T) {
	source := &fakeWhitelistSource{records: []model.WhitelistDomain{
		{Domain: "Acme-VC.com", IsVisible: true},
		{Domain: "hidden-vc.com", IsVisible: false},
		{Domain: " beta-vc.com ", IsVisible: true},
		{Domain: "acme-vc.com", IsVisible: true}, // duplicate after lowercasing
		{Domain: "", IsVisible: true},
	}}
	fetcher := access.NewWhitelistFetcher(source, access.NewCaches(), 5*time.Minute)

	domains := fetcher.Domains(context.Background(), "p1")

	assert.Equal(t, []string{"acme-vc.com", "beta-vc.com"}, domains)
}

func TestWhitelistFailureReturnsEmptySet(t *testing.T) {
	source := &fakeWhitelistSource{err: errors.New("proven unavailable")}
	fetcher := access.NewWhitelistFetcher(source, access.NewCaches(), 5*time.Minute)

	domains := fetcher.Domains(context.Background(), "p1")

	assert.Empty(t, domains)
	assert.Equal(t, 1, source.calls)
}

func TestWhitelistCachedUntilTTLExpires(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	caches := access.NewCachesWithClock(func() time.Time { return now })
	source := &fakeWhitelistSource{records: []model.WhitelistDomain{{Domain: "acme-vc.com", IsVisible: true}}}
	fetcher := access.NewWhitelistFetcher(source, caches, 5*time.Minute)

	fetcher.Domains(context.Background(), "p1")
	fetcher.Domains(context.Background(), "p1")
	assert.Equal(t, 1, source.calls)

	now = now.Add(5 * time.Minute)
	fetcher.Domains(context.Background(), "p1")
	assert.Equal(t, 2, source.calls)
}

func TestWhitelistKeyedByProvider(t *testing.T) {
	source := &fakeWhitelistSource{records: []model.WhitelistDomain{{Domain: "acme-vc.com", IsVisible: true}}}
	fetcher := access.NewWhitelistFetcher(source, access.NewCaches(), 5*time.Minute)

	fetcher.Domains(context.Background(), "p1")
	fetcher.Domains(context.Background(), "p2")

	assert.Equal(t, 2, source.calls)
}

func TestCachesClearForcesRefetch(t *testing.T) {
	caches := access.NewCaches()
	source := &fakeWhitelistSource{records: []model.WhitelistDomain{{Domain: "acme-vc.com", IsVisible: true}}}
	fetcher := access.NewWhitelistFetcher(source, caches, 5*time.Minute)

	fetcher.Domains(context.Background(), "p1")
	caches.Clear()
	fetcher.Domains(context.Background(), "p1")

	assert.Equal(t, 2, source.calls)
}
