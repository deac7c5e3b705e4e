// api/util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/akshayraj/perks-portal/api/logging"
	"github.com/akshayraj/perks-portal/api/model"
)

type NotificationService struct {
	// You might want to add dependencies here, such as a message queue client
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) NotifyAccessRequestChange(ctx context.Context, changeType string, request model.AccessRequest) error {
	// In a real implementation, you might send this to a message queue or external notification service
	switch changeType {
	case "submitted":
		logger.Info("NOTIFICATION: New access request submitted",
			zap.String("requestID", request.ID),
			zap.String("email", request.UserEmail))
	case "approved":
		logger.Info("NOTIFICATION: Access request approved",
			zap.String("requestID", request.ID),
			zap.String("email", request.UserEmail))
	case "denied":
		logger.Info("NOTIFICATION: Access request denied",
			zap.String("requestID", request.ID),
			zap.String("email", request.UserEmail))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}

	return nil
}

func (n *NotificationService) NotifyProviderSwitch(ctx context.Context, providerID string) error {
	logger.Info("NOTIFICATION: Active deals provider switched",
		zap.String("providerID", providerID))
	return nil
}

func (n *NotificationService) SendEmail(ctx context.Context, recipient, subject, body string) error {
	// Mock email sending
	logger.Info("Sending email",
		zap.String("recipient", recipient),
		zap.String("subject", subject))

	// Here you would implement the actual email sending logic
	// This could involve calling an email service API, using an SMTP client, etc.

	return nil
}
