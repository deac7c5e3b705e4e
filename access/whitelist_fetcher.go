// api/access/whitelist_fetcher.go

package access

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	logger "github.com/akshayraj/perks-portal/api/logging"
	"github.com/akshayraj/perks-portal/api/model"
)

// whitelistPageSize is a single large page; whitelist sizes are small and
// bounded, so no pagination loop is needed here.
const whitelistPageSize = 500

// WhitelistSource is the slice of the deals API the fetcher consumes.
type WhitelistSource interface {
	GetWhitelistDomains(ctx context.Context, providerID string, page, pageSize int) ([]model.WhitelistDomain, error)
}

// WhitelistFetcher produces the current set of VC domains authorized to
// access perks for a specific provider. Results are ordered as returned by
// the upstream so the engine's iteration stays deterministic.
type WhitelistFetcher struct {
	source WhitelistSource
	caches *Caches
	ttl    time.Duration
}

func NewWhitelistFetcher(source WhitelistSource, caches *Caches, ttl time.Duration) *WhitelistFetcher {
	return &WhitelistFetcher{
		source: source,
		caches: caches,
		ttl:    ttl,
	}
}

// Domains returns the visible whitelist domains for the provider, lowercased
// and deduplicated. On fetch failure it returns an empty set and logs; no
// domains means no access can be granted via this path (fail closed).
func (f *WhitelistFetcher) Domains(ctx context.Context, providerID string) []string {
	key := "whitelist:" + providerID

	domains, err := f.caches.whitelist.GetOrSet(ctx, key, f.ttl, func(ctx context.Context) ([]string, error) {
		records, err := f.source.GetWhitelistDomains(ctx, providerID, 1, whitelistPageSize)
		if err != nil {
			logger.Error("Failed to fetch whitelist domains",
				zap.Error(err),
				zap.String("providerId", providerID))
			return []string{}, nil
		}

		seen := make(map[string]struct{}, len(records))
		domains := make([]string, 0, len(records))
		for _, record := range records {
			if !record.IsVisible {
				continue
			}
			domain := strings.ToLower(strings.TrimSpace(record.Domain))
			if domain == "" {
				continue
			}
			if _, ok := seen[domain]; ok {
				continue
			}
			seen[domain] = struct{}{}
			domains = append(domains, domain)
		}

		logger.Debug("Whitelist domains refreshed",
			zap.String("providerId", providerID),
			zap.Int("count", len(domains)))
		return domains, nil
	})
	if err != nil {
		// GetOrSet only propagates compute errors, and the compute above never
		// returns one. Fail closed all the same.
		logger.Error("Whitelist cache lookup failed", zap.Error(err), zap.String("providerId", providerID))
		return []string{}
	}
	return domains
}
