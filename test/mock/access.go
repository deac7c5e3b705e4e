// test/mock/access.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/akshayraj/perks-portal/api/model"
	"github.com/akshayraj/perks-portal/api/upstream"
)

// MockWhitelistSource is a mock implementation of access.WhitelistSource
type MockWhitelistSource struct {
	mock.Mock
}

func (m *MockWhitelistSource) GetWhitelistDomains(ctx context.Context, providerID string, page, pageSize int) ([]model.WhitelistDomain, error) {
	args := m.Called(ctx, providerID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WhitelistDomain), args.Error(1)
}

// MockPortfolioSource is a mock implementation of access.PortfolioSource
type MockPortfolioSource struct {
	mock.Mock
}

func (m *MockPortfolioSource) SearchNetworkPortfolios(ctx context.Context, vcDomain string, limit, offset int) ([]upstream.PortfolioRecord, error) {
	args := m.Called(ctx, vcDomain, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]upstream.PortfolioRecord), args.Error(1)
}

// MockGrantStore is a mock implementation of access.ManualGrantStore
type MockGrantStore struct {
	mock.Mock
}

func (m *MockGrantStore) HasApprovedGrant(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
