// api/access/caches.go

package access

import (
	"time"

	"github.com/akshayraj/perks-portal/api/cache"
)

// Caches bundles the two in-process domain caches behind the access engine.
// An explicit instance is injected into the fetchers rather than held as
// module-level state, so tests can swap in a fake clock and a provider switch
// can drop everything at once.
type Caches struct {
	whitelist *cache.TTL[string, []string]
	portfolio *cache.TTL[string, map[string]struct{}]
}

func NewCaches() *Caches {
	return &Caches{
		whitelist: cache.NewTTL[string, []string](),
		portfolio: cache.NewTTL[string, map[string]struct{}](),
	}
}

// NewCachesWithClock creates caches driven by an injected clock, for tests.
func NewCachesWithClock(now func() time.Time) *Caches {
	return &Caches{
		whitelist: cache.NewTTLWithClock[string, []string](now),
		portfolio: cache.NewTTLWithClock[string, map[string]struct{}](now),
	}
}

// Clear drops every cached domain set. Called when the active provider
// changes or a whitelist mutation lands, since either invalidates prior
// decisions wholesale.
func (c *Caches) Clear() {
	c.whitelist.Clear()
	c.portfolio.Clear()
}
