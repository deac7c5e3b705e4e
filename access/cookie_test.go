// api/access/cookie_test.go

package access_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/akshayraj/perks-portal/api/access"
	"github.com/akshayraj/perks-portal/api/model"
)

type fakeChecker struct {
	status model.AccessStatus
	calls  int
}

func (f *fakeChecker) CheckAccess(ctx context.Context, user model.UserIdentity, providerID string) model.AccessStatus {
	f.calls++
	status := f.status
	status.ProviderID = providerID
	return status
}

func testContext(t *testing.T, cookieValue string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if cookieValue != "" {
		// gin escapes cookie values on write and unescapes on read; mimic the
		// browser round-trip.
		c.Request.AddCookie(&http.Cookie{Name: "perks_access", Value: url.QueryEscape(cookieValue)})
	}
	return c, recorder
}

func grantedStatus(checkedAt time.Time, providerID string) model.AccessStatus {
	return model.AccessStatus{
		Granted:         true,
		Reason:          model.ReasonVCTeam,
		MatchedDomain:   "acme-vc.com",
		MatchedVCDomain: "acme-vc.com",
		CheckedAt:       checkedAt.UTC().Format(time.RFC3339),
		ProviderID:      providerID,
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	status := grantedStatus(time.Now(), "p1")

	decoded := access.DecodeStatus(access.EncodeStatus(status))
	assert.NotNil(t, decoded)
	assert.Equal(t, status, *decoded)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	assert.Nil(t, access.DecodeStatus(""))
	assert.Nil(t, access.DecodeStatus("not base64!!"))
	assert.Nil(t, access.DecodeStatus(base64.StdEncoding.EncodeToString([]byte("not json"))))
	// Structurally invalid: missing reason and checkedAt.
	assert.Nil(t, access.DecodeStatus(base64.StdEncoding.EncodeToString([]byte(`{"granted":true}`))))
	// Inconsistent: granted with a denied reason.
	assert.Nil(t, access.DecodeStatus(base64.StdEncoding.EncodeToString(
		[]byte(`{"granted":true,"reason":"denied","checkedAt":"2024-06-01T12:00:00Z","providerId":"p1"}`))))
}

func TestResolveFreshCookieSkipsRecomputation(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cached := grantedStatus(now.Add(-5*time.Minute), "p1")
	checker := &fakeChecker{}
	resolver := access.NewResolverWithClock(checker, "perks_access", time.Hour, 24*time.Hour, false, func() time.Time { return now })

	c, recorder := testContext(t, access.EncodeStatus(cached))
	status := resolver.Resolve(c, model.UserIdentity{ID: "u1"}, "p1")

	assert.Equal(t, cached, status)
	assert.Equal(t, 0, checker.calls)
	// Fresh hit: no cookie rewrite either.
	assert.Empty(t, recorder.Header().Get("Set-Cookie"))
}

func TestResolveProviderMismatchForcesFreshCheck(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cached := grantedStatus(now.Add(-5*time.Minute), "p1")
	checker := &fakeChecker{status: model.AccessStatus{
		Granted:   false,
		Reason:    model.ReasonDenied,
		CheckedAt: now.Format(time.RFC3339),
	}}
	resolver := access.NewResolverWithClock(checker, "perks_access", time.Hour, 24*time.Hour, false, func() time.Time { return now })

	c, _ := testContext(t, access.EncodeStatus(cached))
	status := resolver.Resolve(c, model.UserIdentity{ID: "u1"}, "p2")

	assert.Equal(t, 1, checker.calls)
	assert.Equal(t, "p2", status.ProviderID)
	assert.False(t, status.Granted)
}

func TestResolveStaleByAgeForcesFreshCheck(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cached := grantedStatus(now.Add(-2*time.Hour), "p1")
	checker := &fakeChecker{status: grantedStatus(now, "p1")}
	resolver := access.NewResolverWithClock(checker, "perks_access", time.Hour, 24*time.Hour, false, func() time.Time { return now })

	c, recorder := testContext(t, access.EncodeStatus(cached))
	status := resolver.Resolve(c, model.UserIdentity{ID: "u1"}, "p1")

	assert.Equal(t, 1, checker.calls)
	assert.Equal(t, now.Format(time.RFC3339), status.CheckedAt)
	assert.Contains(t, recorder.Header().Get("Set-Cookie"), "perks_access=")
}

func TestResolveAbsentCookieRunsEngineAndWritesCookie(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	checker := &fakeChecker{status: grantedStatus(now, "p1")}
	resolver := access.NewResolverWithClock(checker, "perks_access", time.Hour, 24*time.Hour, false, func() time.Time { return now })

	c, recorder := testContext(t, "")
	status := resolver.Resolve(c, model.UserIdentity{ID: "u1"}, "p1")

	assert.Equal(t, 1, checker.calls)
	assert.True(t, status.Granted)

	setCookie := recorder.Header().Get("Set-Cookie")
	assert.Contains(t, setCookie, "perks_access=")
	assert.Contains(t, setCookie, "Path=/")
	assert.Contains(t, setCookie, "SameSite=Lax")
	assert.Contains(t, setCookie, "Max-Age=86400")
	assert.NotContains(t, setCookie, "HttpOnly")

	// The written value round-trips back to the computed status.
	escaped := strings.TrimPrefix(strings.Split(setCookie, ";")[0], "perks_access=")
	value, err := url.QueryUnescape(escaped)
	assert.NoError(t, err)
	decoded := access.DecodeStatus(value)
	assert.NotNil(t, decoded)
	assert.Equal(t, status, *decoded)
}

func TestResolveCorruptCookieTreatedAsAbsent(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	checker := &fakeChecker{status: grantedStatus(now, "p1")}
	resolver := access.NewResolverWithClock(checker, "perks_access", time.Hour, 24*time.Hour, false, func() time.Time { return now })

	c, _ := testContext(t, "%%%corrupt%%%")
	status := resolver.Resolve(c, model.UserIdentity{ID: "u1"}, "p1")

	assert.Equal(t, 1, checker.calls)
	assert.True(t, status.Granted)
}

func TestRefreshIgnoresFreshCookie(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cached := grantedStatus(now.Add(-5*time.Minute), "p1")
	checker := &fakeChecker{status: grantedStatus(now, "p1")}
	resolver := access.NewResolverWithClock(checker, "perks_access", time.Hour, 24*time.Hour, false, func() time.Time { return now })

	c, _ := testContext(t, access.EncodeStatus(cached))
	status := resolver.Refresh(c, model.UserIdentity{ID: "u1"}, "p1")

	assert.Equal(t, 1, checker.calls)
	assert.Equal(t, now.Format(time.RFC3339), status.CheckedAt)
}

func TestClearCookieExpiresValue(t *testing.T) {
	resolver := access.NewResolver(&fakeChecker{}, "perks_access", time.Hour, 24*time.Hour, false)

	c, recorder := testContext(t, "")
	resolver.ClearCookie(c)

	setCookie := recorder.Header().Get("Set-Cookie")
	assert.Contains(t, setCookie, "perks_access=")
	assert.Contains(t, setCookie, "Max-Age=0")
}
