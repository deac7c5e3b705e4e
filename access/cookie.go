// api/access/cookie.go

package access

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/akshayraj/perks-portal/api/logging"
	"github.com/akshayraj/perks-portal/api/model"
)

// The cookie is a performance cache, not a security boundary: base64 JSON
// with no signature. Server-side checks (admin header, route guard recompute)
// stay authoritative, and anything that looks inconsistent forces a fresh run
// of the decision tree.

// EncodeStatus serializes a status to its cookie representation.
func EncodeStatus(status model.AccessStatus) string {
	payload, err := json.Marshal(status)
	if err != nil {
		// AccessStatus contains only marshalable fields; this cannot happen
		// short of a logic bug.
		logger.Error("Failed to marshal access status", zap.Error(err))
		return ""
	}
	return base64.StdEncoding.EncodeToString(payload)
}

// DecodeStatus parses a cookie value back into a status. It returns nil on
// any decode or validation failure rather than an error; a corrupt cookie is
// treated exactly like an absent one.
func DecodeStatus(value string) *model.AccessStatus {
	if value == "" {
		return nil
	}
	payload, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var status model.AccessStatus
	if err := json.Unmarshal(payload, &status); err != nil {
		return nil
	}
	if status.CheckedAt == "" || !validReason(status.Reason) {
		return nil
	}
	if status.Granted && status.Reason == model.ReasonDenied {
		return nil
	}
	return &status
}

func validReason(reason model.AccessReason) bool {
	switch reason {
	case model.ReasonAdmin, model.ReasonVCTeam, model.ReasonPortfolioMatch,
		model.ReasonManualGrant, model.ReasonDenied:
		return true
	}
	return false
}

// Resolver caches the most recent AccessStatus in a client-held cookie so the
// decision tree does not rerun on every request, while bounding staleness by
// a recheck interval shorter than the cookie max-age.
type Resolver struct {
	checker         Checker
	cookieName      string
	recheckInterval time.Duration
	maxAge          time.Duration
	secure          bool
	now             func() time.Time
}

func NewResolver(checker Checker, cookieName string, recheckInterval, maxAge time.Duration, secure bool) *Resolver {
	return &Resolver{
		checker:         checker,
		cookieName:      cookieName,
		recheckInterval: recheckInterval,
		maxAge:          maxAge,
		secure:          secure,
		now:             time.Now,
	}
}

// NewResolverWithClock creates a resolver with an injected clock, for tests.
func NewResolverWithClock(checker Checker, cookieName string, recheckInterval, maxAge time.Duration, secure bool, now func() time.Time) *Resolver {
	resolver := NewResolver(checker, cookieName, recheckInterval, maxAge, secure)
	resolver.now = now
	return resolver
}

// Resolve returns the cached status when it is fresh and scoped to the active
// provider, otherwise runs the decision tree and writes the result back to
// the cookie.
func (r *Resolver) Resolve(c *gin.Context, user model.UserIdentity, providerID string) model.AccessStatus {
	if value, err := c.Cookie(r.cookieName); err == nil {
		if cached := DecodeStatus(value); cached != nil {
			if cached.ProviderID != providerID {
				logger.Debug("Access cookie scoped to a different provider, rechecking",
					zap.String("cookieProviderId", cached.ProviderID),
					zap.String("providerId", providerID))
			} else if r.isFresh(*cached) {
				// Fresh hit: no recomputation and no cookie rewrite.
				return *cached
			}
		}
	}

	status := r.checker.CheckAccess(c.Request.Context(), user, providerID)
	r.writeCookie(c, status)
	return status
}

// Refresh runs the decision tree unconditionally, ignoring any cached
// cookie, and writes the new result back.
func (r *Resolver) Refresh(c *gin.Context, user model.UserIdentity, providerID string) model.AccessStatus {
	status := r.checker.CheckAccess(c.Request.Context(), user, providerID)
	r.writeCookie(c, status)
	return status
}

func (r *Resolver) isFresh(status model.AccessStatus) bool {
	checkedAt, err := time.Parse(time.RFC3339, status.CheckedAt)
	if err != nil {
		return false
	}
	return r.now().Sub(checkedAt) < r.recheckInterval
}

func (r *Resolver) writeCookie(c *gin.Context, status model.AccessStatus) {
	if c.Writer.Written() {
		// The computed status is still returned to the caller; only the
		// client-side cache misses out.
		logger.Warn("Response already written, skipping access cookie write")
		return
	}
	value := EncodeStatus(status)
	if value == "" {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(r.cookieName, value, int(r.maxAge.Seconds()), "/", "", r.secure, false)
}

// ClearCookie overwrites the access cookie with an empty, expired value.
func (r *Resolver) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(r.cookieName, "", -1, "/", "", r.secure, false)
}
