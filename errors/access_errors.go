// api/errors/access_errors.go
package errors

import "errors"

var (
	ErrProviderNotFound    = errors.New("provider not found")
	ErrNoActiveProvider    = errors.New("no active provider configured")
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
	ErrDatabaseOperation   = errors.New("database operation failed")
	ErrInternalServer      = errors.New("internal server error")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrAccessDenied        = errors.New("access denied")
)
