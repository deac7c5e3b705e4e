// api/service/whitelist_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/akshayraj/perks-portal/api/access"
	perks_errors "github.com/akshayraj/perks-portal/api/errors"
	logger "github.com/akshayraj/perks-portal/api/logging"
	"github.com/akshayraj/perks-portal/api/model"
	"github.com/akshayraj/perks-portal/api/upstream"
	"github.com/akshayraj/perks-portal/api/util"
)

type IWhitelistService interface {
	ListDomains(ctx context.Context, page, pageSize int) ([]model.WhitelistDomain, error)
	AddDomain(ctx context.Context, domain model.WhitelistDomain) (*model.WhitelistDomain, error)
	RemoveDomain(ctx context.Context, domainID string) error
}

// WhitelistService proxies whitelist administration to the deals provider.
// Every mutation drops the domain caches so the next access check sees the
// change instead of waiting out the whitelist TTL.
type WhitelistService struct {
	proven         *upstream.ProvenClient
	providers      IProviderService
	caches         *access.Caches
	validationUtil *util.ValidationUtil
}

func NewWhitelistService(proven *upstream.ProvenClient, providers IProviderService, caches *access.Caches, validationUtil *util.ValidationUtil) *WhitelistService {
	return &WhitelistService{
		proven:         proven,
		providers:      providers,
		caches:         caches,
		validationUtil: validationUtil,
	}
}

func (s *WhitelistService) ListDomains(ctx context.Context, page, pageSize int) ([]model.WhitelistDomain, error) {
	providerID := s.providers.ActiveProviderID()
	if providerID == "" {
		return nil, perks_errors.ErrNoActiveProvider
	}

	domains, err := s.proven.GetWhitelistDomains(ctx, providerID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", perks_errors.ErrUpstreamUnavailable, err)
	}
	return domains, nil
}

func (s *WhitelistService) AddDomain(ctx context.Context, domain model.WhitelistDomain) (*model.WhitelistDomain, error) {
	providerID := s.providers.ActiveProviderID()
	if providerID == "" {
		return nil, perks_errors.ErrNoActiveProvider
	}
	if err := s.validationUtil.ValidateWhitelistDomain(domain); err != nil {
		logger.Warn("Invalid whitelist domain", zap.Error(err), zap.String("domain", domain.Domain))
		return nil, perks_errors.ErrInvalidDomainData
	}

	created, err := s.proven.AddWhitelistDomain(ctx, providerID, domain)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", perks_errors.ErrUpstreamUnavailable, err)
	}

	s.caches.Clear()
	logger.Info("Whitelist domain added",
		zap.String("providerId", providerID),
		zap.String("domain", created.Domain))
	return created, nil
}

func (s *WhitelistService) RemoveDomain(ctx context.Context, domainID string) error {
	providerID := s.providers.ActiveProviderID()
	if providerID == "" {
		return perks_errors.ErrNoActiveProvider
	}

	if err := s.proven.DeleteWhitelistDomain(ctx, providerID, domainID); err != nil {
		return fmt.Errorf("%w: %v", perks_errors.ErrUpstreamUnavailable, err)
	}

	s.caches.Clear()
	logger.Info("Whitelist domain removed",
		zap.String("providerId", providerID),
		zap.String("domainId", domainID))
	return nil
}
