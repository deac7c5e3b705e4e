// test/mock/service.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/akshayraj/perks-portal/api/model"
)

// MockAccessRequestService is a mock implementation of service.IAccessRequestService
type MockAccessRequestService struct {
	mock.Mock
}

func (m *MockAccessRequestService) SubmitRequest(ctx context.Context, request model.AccessRequest) (*model.AccessRequest, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AccessRequest), args.Error(1)
}

func (m *MockAccessRequestService) ListRequests(ctx context.Context, status model.RequestStatus) ([]model.AccessRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AccessRequest), args.Error(1)
}

func (m *MockAccessRequestService) ReviewRequest(ctx context.Context, requestID string, status model.RequestStatus) (*model.AccessRequest, error) {
	args := m.Called(ctx, requestID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AccessRequest), args.Error(1)
}
