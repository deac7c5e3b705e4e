// api/service/vendor_service.go
package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	perks_errors "github.com/akshayraj/perks-portal/api/errors"
	"github.com/akshayraj/perks-portal/api/model"
	"github.com/akshayraj/perks-portal/api/upstream"
)

type IVendorService interface {
	GetCatalog(ctx context.Context, page, pageSize int) (*VendorCatalog, error)
	ListOffers(ctx context.Context, vendorID string, page, pageSize int) ([]model.Offer, error)
}

// VendorCatalog is one page of vendors plus the category list the portal
// renders as filters.
type VendorCatalog struct {
	Vendors    []model.Vendor   `json:"vendors"`
	Categories []model.Category `json:"categories"`
}

// VendorService proxies vendor and offer data from the deals provider for
// the active provider. Data passes through unmodified.
type VendorService struct {
	proven    *upstream.ProvenClient
	providers IProviderService
}

func NewVendorService(proven *upstream.ProvenClient, providers IProviderService) *VendorService {
	return &VendorService{
		proven:    proven,
		providers: providers,
	}
}

// GetCatalog fetches vendors and categories concurrently; the two calls are
// independent and the portal wants both before rendering.
func (s *VendorService) GetCatalog(ctx context.Context, page, pageSize int) (*VendorCatalog, error) {
	providerID := s.providers.ActiveProviderID()
	if providerID == "" {
		return nil, perks_errors.ErrNoActiveProvider
	}

	catalog := &VendorCatalog{}
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		vendors, err := s.proven.ListVendors(groupCtx, providerID, page, pageSize)
		if err != nil {
			return fmt.Errorf("%w: %v", perks_errors.ErrUpstreamUnavailable, err)
		}
		catalog.Vendors = vendors
		return nil
	})
	group.Go(func() error {
		categories, err := s.proven.ListCategories(groupCtx, providerID)
		if err != nil {
			return fmt.Errorf("%w: %v", perks_errors.ErrUpstreamUnavailable, err)
		}
		catalog.Categories = categories
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return catalog, nil
}

func (s *VendorService) ListOffers(ctx context.Context, vendorID string, page, pageSize int) ([]model.Offer, error) {
	providerID := s.providers.ActiveProviderID()
	if providerID == "" {
		return nil, perks_errors.ErrNoActiveProvider
	}

	offers, err := s.proven.ListOffers(ctx, providerID, vendorID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", perks_errors.ErrUpstreamUnavailable, err)
	}
	return offers, nil
}
