// api/service/access_request_service.go
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akshayraj/perks-portal/api/dao"
	perks_errors "github.com/akshayraj/perks-portal/api/errors"
	logger "github.com/akshayraj/perks-portal/api/logging"
	"github.com/akshayraj/perks-portal/api/model"
	"github.com/akshayraj/perks-portal/api/util"
)

type IAccessRequestService interface {
	SubmitRequest(ctx context.Context, request model.AccessRequest) (*model.AccessRequest, error)
	ListRequests(ctx context.Context, status model.RequestStatus) ([]model.AccessRequest, error)
	ReviewRequest(ctx context.Context, requestID string, status model.RequestStatus) (*model.AccessRequest, error)
}

// AccessRequestService handles the manual-grant workflow: users whose
// domains match no automatic rule submit a request, admins approve or deny
// it, and approved requests feed the engine's manual-grant branch.
type AccessRequestService struct {
	requestDAO      *dao.AccessRequestDAO
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

func NewAccessRequestService(requestDAO *dao.AccessRequestDAO, validationUtil *util.ValidationUtil, notificationSvc *util.NotificationService, eventBus *util.EventBus) *AccessRequestService {
	service := &AccessRequestService{
		requestDAO:      requestDAO,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe("access_request.reviewed", service.handleRequestReviewed)

	return service
}

func (s *AccessRequestService) handleRequestReviewed(ctx context.Context, event util.Event) error {
	request, ok := event.Payload.(model.AccessRequest)
	if !ok {
		logger.Error("Invalid event payload type", zap.Any("payload", event.Payload))
		return nil
	}

	changeType := "approved"
	if request.Status == model.RequestDenied {
		changeType = "denied"
	}
	if err := s.notificationSvc.NotifyAccessRequestChange(ctx, changeType, request); err != nil {
		logger.Warn("Failed to send access request notification", zap.Error(err), zap.String("requestID", request.ID))
	}
	return nil
}

func (s *AccessRequestService) SubmitRequest(ctx context.Context, request model.AccessRequest) (*model.AccessRequest, error) {
	request.UserEmail = strings.ToLower(strings.TrimSpace(request.UserEmail))
	if err := s.validationUtil.ValidateAccessRequest(request); err != nil {
		logger.Warn("Invalid access request", zap.Error(err), zap.String("email", request.UserEmail))
		return nil, perks_errors.ErrInvalidRequestData
	}

	request.ID = uuid.NewString()
	request.Status = model.RequestPending
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt

	created, err := s.requestDAO.CreateAccessRequest(ctx, request)
	if err != nil {
		return nil, err
	}

	logger.Info("Access request submitted",
		zap.String("requestID", created.ID),
		zap.String("email", created.UserEmail))
	if err := s.notificationSvc.NotifyAccessRequestChange(ctx, "submitted", *created); err != nil {
		logger.Warn("Failed to send access request notification", zap.Error(err))
	}
	return created, nil
}

func (s *AccessRequestService) ListRequests(ctx context.Context, status model.RequestStatus) ([]model.AccessRequest, error) {
	if status != "" {
		if err := s.validationUtil.ValidateRequestStatus(status); err != nil {
			return nil, perks_errors.ErrInvalidRequestData
		}
	}
	return s.requestDAO.ListAccessRequests(ctx, status)
}

// ReviewRequest moves a request to approved or denied. Approval is what the
// engine's manual-grant lookup keys on, so it takes effect on the user's next
// stale-cookie recheck.
func (s *AccessRequestService) ReviewRequest(ctx context.Context, requestID string, status model.RequestStatus) (*model.AccessRequest, error) {
	if status != model.RequestApproved && status != model.RequestDenied {
		return nil, perks_errors.ErrInvalidRequestData
	}

	updated, err := s.requestDAO.UpdateAccessRequestStatus(ctx, requestID, status)
	if err != nil {
		return nil, err
	}

	logger.Info("Access request reviewed",
		zap.String("requestID", updated.ID),
		zap.String("status", string(updated.Status)))
	s.eventBus.Publish(ctx, "access_request.reviewed", *updated)
	return updated, nil
}
