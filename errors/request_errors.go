package errors

import "errors"

var (
	ErrRequestNotFound     = errors.New("access request not found")
	ErrRequestConflict     = errors.New("access request already exists for this email")
	ErrInvalidRequestData  = errors.New("invalid access request data")
	ErrInvalidDomainData   = errors.New("invalid whitelist domain data")
	ErrInvalidProviderData = errors.New("invalid provider data")
)
