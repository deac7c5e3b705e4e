// api/access/portfolio_fetcher_test.go

package access_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/akshayraj/perks-portal/api/access"
	"github.com/akshayraj/perks-portal/api/upstream"
)

// pagedPortfolioSource serves scripted pages keyed by offset.
type pagedPortfolioSource struct {
	pages   map[int][]upstream.PortfolioRecord
	failAt  int // offset at which to return an error; -1 disables
	calls   int
	perPage int
}

func (s *pagedPortfolioSource) SearchNetworkPortfolios(ctx context.Context, vcDomain string, limit, offset int) ([]upstream.PortfolioRecord, error) {
	s.calls++
	if s.failAt >= 0 && offset == s.failAt {
		return nil, errors.New("bridge unavailable")
	}
	return s.pages[offset], nil
}

func portfolioPage(count int, prefix string) []upstream.PortfolioRecord {
	records := make([]upstream.PortfolioRecord, count)
	for i := range records {
		records[i].Attributes.Domain = fmt.Sprintf("%s-%d.com", prefix, i)
	}
	return records
}

func TestPortfolioPaginationStopsAtShortPage(t *testing.T) {
	source := &pagedPortfolioSource{
		failAt: -1,
		pages: map[int][]upstream.PortfolioRecord{
			0: portfolioPage(3, "page0"),
			3: portfolioPage(1, "page1"),
		},
	}
	fetcher := access.NewPortfolioFetcher(source, access.NewCaches(), 15*time.Minute, 3, 50)

	domains := fetcher.Domains(context.Background(), "acme-vc.com")

	assert.Len(t, domains, 4)
	assert.Contains(t, domains, "page1-0.com")
	assert.Equal(t, 2, source.calls)
}

func TestPortfolioPaginationStopsAtEmptyPage(t *testing.T) {
	source := &pagedPortfolioSource{
		failAt: -1,
		pages: map[int][]upstream.PortfolioRecord{
			0: portfolioPage(3, "page0"),
			3: portfolioPage(3, "page1"),
			// offset 6 returns nothing
		},
	}
	fetcher := access.NewPortfolioFetcher(source, access.NewCaches(), 15*time.Minute, 3, 50)

	domains := fetcher.Domains(context.Background(), "acme-vc.com")

	assert.Len(t, domains, 6)
	assert.Equal(t, 3, source.calls)
}

func TestPortfolioPaginationHitsSafetyCap(t *testing.T) {
	// Upstream always returns a full page; without the cap this would never
	// terminate.
	const pageSize, maxPages = 3, 5
	pages := map[int][]upstream.PortfolioRecord{}
	for page := 0; page < 100; page++ {
		pages[page*pageSize] = portfolioPage(pageSize, fmt.Sprintf("page%d", page))
	}
	source := &pagedPortfolioSource{failAt: -1, pages: pages}
	fetcher := access.NewPortfolioFetcher(source, access.NewCaches(), 15*time.Minute, pageSize, maxPages)

	domains := fetcher.Domains(context.Background(), "acme-vc.com")

	assert.Equal(t, maxPages, source.calls)
	assert.Len(t, domains, pageSize*maxPages)
}

func TestPortfolioPartialFailureKeepsAccumulated(t *testing.T) {
	source := &pagedPortfolioSource{
		failAt: 6, // page 3 fails
		pages: map[int][]upstream.PortfolioRecord{
			0: portfolioPage(3, "page0"),
			3: portfolioPage(3, "page1"),
		},
	}
	fetcher := access.NewPortfolioFetcher(source, access.NewCaches(), 15*time.Minute, 3, 50)

	domains := fetcher.Domains(context.Background(), "acme-vc.com")

	assert.Len(t, domains, 6)
	assert.Contains(t, domains, "page0-0.com")
	assert.Contains(t, domains, "page1-2.com")
}

func TestPortfolioDomainsAreCachedPerVCDomain(t *testing.T) {
	source := &pagedPortfolioSource{
		failAt: -1,
		pages:  map[int][]upstream.PortfolioRecord{0: portfolioPage(1, "startup")},
	}
	fetcher := access.NewPortfolioFetcher(source, access.NewCaches(), 15*time.Minute, 100, 50)

	fetcher.Domains(context.Background(), "Acme-VC.com")
	fetcher.Domains(context.Background(), "acme-vc.com")

	// Case-insensitive key: the second lookup is a cache hit.
	assert.Equal(t, 1, source.calls)
}

func TestPortfolioDomainsLowercased(t *testing.T) {
	records := []upstream.PortfolioRecord{}
	var record upstream.PortfolioRecord
	record.Attributes.Domain = " StartupX.COM "
	records = append(records, record)

	source := &pagedPortfolioSource{failAt: -1, pages: map[int][]upstream.PortfolioRecord{0: records}}
	fetcher := access.NewPortfolioFetcher(source, access.NewCaches(), 15*time.Minute, 100, 50)

	domains := fetcher.Domains(context.Background(), "acme-vc.com")
	assert.Contains(t, domains, "startupx.com")
}
