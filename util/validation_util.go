// api/util/validation_util.go

package util

import (
	"fmt"
	"strings"

	"github.com/akshayraj/perks-portal/api/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

func (v *ValidationUtil) ValidateAccessRequest(request model.AccessRequest) error {
	if request.UserEmail == "" {
		return fmt.Errorf("access request email cannot be empty")
	}
	if !strings.Contains(request.UserEmail, "@") {
		return fmt.Errorf("access request email is not a valid address")
	}
	if len(request.Message) > 2000 {
		return fmt.Errorf("access request message cannot exceed 2000 characters")
	}
	// Add more validation rules as needed
	return nil
}

func (v *ValidationUtil) ValidateRequestStatus(status model.RequestStatus) error {
	switch status {
	case model.RequestPending, model.RequestApproved, model.RequestDenied:
		return nil
	}
	return fmt.Errorf("unknown access request status: %s", status)
}

func (v *ValidationUtil) ValidateWhitelistDomain(domain model.WhitelistDomain) error {
	if domain.Domain == "" {
		return fmt.Errorf("whitelist domain cannot be empty")
	}
	if strings.ContainsAny(domain.Domain, " @/") {
		return fmt.Errorf("whitelist domain must be a bare domain name")
	}
	if !strings.Contains(domain.Domain, ".") {
		return fmt.Errorf("whitelist domain must contain a dot")
	}
	// Add more validation rules as needed
	return nil
}

func (v *ValidationUtil) ValidateProvider(provider model.Provider) error {
	if provider.ID == "" {
		return fmt.Errorf("provider ID cannot be empty")
	}
	if provider.Name == "" {
		return fmt.Errorf("provider name cannot be empty")
	}
	return nil
}
