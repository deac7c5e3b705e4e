// api/access/portfolio_fetcher.go

package access

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	logger "github.com/akshayraj/perks-portal/api/logging"
	"github.com/akshayraj/perks-portal/api/upstream"
)

// PortfolioSource is the slice of the Bridge network API the fetcher consumes.
type PortfolioSource interface {
	SearchNetworkPortfolios(ctx context.Context, vcDomain string, limit, offset int) ([]upstream.PortfolioRecord, error)
}

// PortfolioFetcher collects the portfolio-company domains affiliated with a
// VC domain by paging through the Bridge search endpoint. The portfolio TTL
// is longer than the whitelist TTL: portfolio composition changes less often
// and the paginated fetch is the expensive one.
type PortfolioFetcher struct {
	source   PortfolioSource
	caches   *Caches
	ttl      time.Duration
	pageSize int
	maxPages int
}

func NewPortfolioFetcher(source PortfolioSource, caches *Caches, ttl time.Duration, pageSize, maxPages int) *PortfolioFetcher {
	return &PortfolioFetcher{
		source:   source,
		caches:   caches,
		ttl:      ttl,
		pageSize: pageSize,
		maxPages: maxPages,
	}
}

// Domains returns the set of lowercased portfolio-company domains for the VC
// domain. Pagination stops on an empty page, a short page, or the hard page
// cap; the cap bounds worst-case cost against a misbehaving upstream. A fetch
// failure mid-pagination keeps whatever was accumulated so far — availability
// over completeness.
func (f *PortfolioFetcher) Domains(ctx context.Context, vcDomain string) map[string]struct{} {
	vcDomain = strings.ToLower(vcDomain)
	key := "portfolio:" + vcDomain

	domains, err := f.caches.portfolio.GetOrSet(ctx, key, f.ttl, func(ctx context.Context) (map[string]struct{}, error) {
		collected := make(map[string]struct{})

		for page := 0; ; page++ {
			if page >= f.maxPages {
				logger.Warn("Portfolio pagination hit the page cap",
					zap.String("vcDomain", vcDomain),
					zap.Int("maxPages", f.maxPages))
				break
			}

			records, err := f.source.SearchNetworkPortfolios(ctx, vcDomain, f.pageSize, page*f.pageSize)
			if err != nil {
				logger.Error("Portfolio fetch failed mid-pagination, keeping partial results",
					zap.Error(err),
					zap.String("vcDomain", vcDomain),
					zap.Int("page", page),
					zap.Int("collected", len(collected)))
				break
			}
			if len(records) == 0 {
				break
			}

			for _, record := range records {
				domain := strings.ToLower(strings.TrimSpace(record.Attributes.Domain))
				if domain != "" {
					collected[domain] = struct{}{}
				}
			}

			// A short page signals the last page.
			if len(records) < f.pageSize {
				break
			}
		}

		logger.Debug("Portfolio domains refreshed",
			zap.String("vcDomain", vcDomain),
			zap.Int("count", len(collected)))
		return collected, nil
	})
	if err != nil {
		logger.Error("Portfolio cache lookup failed", zap.Error(err), zap.String("vcDomain", vcDomain))
		return map[string]struct{}{}
	}
	return domains
}
