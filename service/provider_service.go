// api/service/provider_service.go
package service

import (
	"context"
	"sync"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/akshayraj/perks-portal/api/access"
	perks_errors "github.com/akshayraj/perks-portal/api/errors"
	logger "github.com/akshayraj/perks-portal/api/logging"
	"github.com/akshayraj/perks-portal/api/model"
	"github.com/akshayraj/perks-portal/api/util"
)

type IProviderService interface {
	ListProviders(ctx context.Context) []model.Provider
	ActiveProviderID() string
	SwitchProvider(ctx context.Context, providerID string) error
}

// ProviderService holds the registry of configured deals providers and which
// one is active. Switching providers drops both domain caches: every cached
// decision input was scoped to the previous provider.
type ProviderService struct {
	mu        sync.RWMutex
	providers []model.Provider
	activeID  string

	caches          *access.Caches
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

func NewProviderService(caches *access.Caches, notificationSvc *util.NotificationService, eventBus *util.EventBus) (*ProviderService, error) {
	var providers []model.Provider
	if err := viper.UnmarshalKey("proven.providers", &providers); err != nil {
		return nil, err
	}

	activeID := viper.GetString("proven.defaultProviderId")
	if activeID == "" && len(providers) > 0 {
		activeID = providers[0].ID
	}
	if activeID == "" {
		// Not fatal: an unresolvable provider surfaces downstream as an empty
		// whitelist, which the engine folds into a deny.
		logger.Warn("No default deals provider configured")
	}

	return &ProviderService{
		providers:       providers,
		activeID:        activeID,
		caches:          caches,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}, nil
}

func (s *ProviderService) ListProviders(ctx context.Context) []model.Provider {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Provider, len(s.providers))
	copy(out, s.providers)
	for i := range out {
		out[i].Active = out[i].ID == s.activeID
	}
	return out
}

func (s *ProviderService) ActiveProviderID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID
}

func (s *ProviderService) SwitchProvider(ctx context.Context, providerID string) error {
	s.mu.Lock()
	found := false
	for _, provider := range s.providers {
		if provider.ID == providerID {
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return perks_errors.ErrProviderNotFound
	}
	s.activeID = providerID
	s.mu.Unlock()

	// Whitelist and portfolio sets from the old provider must not leak into
	// decisions made under the new one.
	s.caches.Clear()

	logger.Info("Active deals provider switched", zap.String("providerId", providerID))
	if err := s.notificationSvc.NotifyProviderSwitch(ctx, providerID); err != nil {
		logger.Warn("Failed to send provider switch notification", zap.Error(err))
	}
	s.eventBus.Publish(ctx, "provider.switched", providerID)
	return nil
}
