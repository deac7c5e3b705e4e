// api/model/request.go
package model

import "time"

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestDenied   RequestStatus = "denied"
)

// AccessRequest is a manually reviewed request for portal access from a user
// whose domains match no automatic rule.
type AccessRequest struct {
	ID        string        `json:"id"`
	UserEmail string        `json:"userEmail"`
	Company   string        `json:"company,omitempty"`
	Message   string        `json:"message,omitempty"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
