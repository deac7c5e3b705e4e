// api/access/engine.go

package access

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	logger "github.com/akshayraj/perks-portal/api/logging"
	"github.com/akshayraj/perks-portal/api/model"
)

// ManualGrantStore looks up admin-approved access requests.
type ManualGrantStore interface {
	HasApprovedGrant(ctx context.Context, email string) (bool, error)
}

// Checker is the boundary the resolver and route guards depend on.
type Checker interface {
	CheckAccess(ctx context.Context, user model.UserIdentity, providerID string) model.AccessStatus
}

// Engine is the authoritative decision function mapping (user, provider) to
// an AccessStatus. Apart from logging it is side-effect free; denial is a
// normal return value, never an error.
type Engine struct {
	whitelist *WhitelistFetcher
	portfolio *PortfolioFetcher
	grants    ManualGrantStore
	now       func() time.Time
}

func NewEngine(whitelist *WhitelistFetcher, portfolio *PortfolioFetcher, grants ManualGrantStore) *Engine {
	return &Engine{
		whitelist: whitelist,
		portfolio: portfolio,
		grants:    grants,
		now:       time.Now,
	}
}

// NewEngineWithClock creates an engine with an injected clock, for tests.
func NewEngineWithClock(whitelist *WhitelistFetcher, portfolio *PortfolioFetcher, grants ManualGrantStore, now func() time.Time) *Engine {
	engine := NewEngine(whitelist, portfolio, grants)
	engine.now = now
	return engine
}

// CheckAccess walks the decision tree in order, short-circuiting on the first
// match: admin bypass, direct VC-domain match, portfolio-company match,
// manual grant, deny. The candidate loops are sequential on purpose so a hit
// on an early domain avoids every later upstream call.
func (e *Engine) CheckAccess(ctx context.Context, user model.UserIdentity, providerID string) model.AccessStatus {
	if user.IsAdmin {
		logger.Info("Access check: granted:admin",
			zap.String("userId", user.ID),
			zap.String("providerId", providerID))
		return e.status(model.AccessStatus{
			Granted: true,
			Reason:  model.ReasonAdmin,
		}, providerID)
	}

	if len(user.ConnectedDomains) == 0 {
		logger.Info("Access check: denied:no_domains",
			zap.String("userId", user.ID),
			zap.String("providerId", providerID))
		return e.status(model.AccessStatus{
			Granted: false,
			Reason:  model.ReasonDenied,
		}, providerID)
	}

	// An empty whitelist means nothing is configured, not everything allowed.
	whitelist := e.whitelist.Domains(ctx, providerID)
	if len(whitelist) == 0 {
		logger.Info("Access check: denied:no_whitelist",
			zap.String("userId", user.ID),
			zap.String("providerId", providerID))
		return e.status(model.AccessStatus{
			Granted: false,
			Reason:  model.ReasonDenied,
		}, providerID)
	}

	whitelisted := make(map[string]struct{}, len(whitelist))
	for _, domain := range whitelist {
		whitelisted[domain] = struct{}{}
	}

	// Direct VC match: first of the user's domains found in the whitelist
	// wins, in the order the identity supplied them.
	for _, userDomain := range user.ConnectedDomains {
		userDomain = strings.ToLower(userDomain)
		if _, ok := whitelisted[userDomain]; ok {
			logger.Info("Access check: granted:vc_team",
				zap.String("userId", user.ID),
				zap.String("providerId", providerID),
				zap.String("matchedDomain", userDomain))
			return e.status(model.AccessStatus{
				Granted:         true,
				Reason:          model.ReasonVCTeam,
				MatchedDomain:   userDomain,
				MatchedVCDomain: userDomain,
			}, providerID)
		}
	}

	// Portfolio match: walk the whitelist in array order, one portfolio fetch
	// per VC domain, checking every user domain against each set.
	for _, vcDomain := range whitelist {
		portfolio := e.portfolio.Domains(ctx, vcDomain)
		if len(portfolio) == 0 {
			continue
		}
		for _, userDomain := range user.ConnectedDomains {
			userDomain = strings.ToLower(userDomain)
			if _, ok := portfolio[userDomain]; ok {
				logger.Info("Access check: granted:portfolio_match",
					zap.String("userId", user.ID),
					zap.String("providerId", providerID),
					zap.String("matchedDomain", userDomain),
					zap.String("matchedVcDomain", vcDomain))
				return e.status(model.AccessStatus{
					Granted:         true,
					Reason:          model.ReasonPortfolioMatch,
					MatchedDomain:   userDomain,
					MatchedVCDomain: vcDomain,
				}, providerID)
			}
		}
	}

	// Manual grant: store errors (e.g. missing table) count as "no grant
	// found", not as a fatal error.
	granted, err := e.grants.HasApprovedGrant(ctx, strings.ToLower(user.Email))
	if err != nil {
		logger.Error("Manual grant lookup failed, treating as no grant",
			zap.Error(err),
			zap.String("userId", user.ID))
		granted = false
	}
	if granted {
		logger.Info("Access check: granted:manual_grant",
			zap.String("userId", user.ID),
			zap.String("providerId", providerID),
			zap.String("email", user.Email))
		return e.status(model.AccessStatus{
			Granted: true,
			Reason:  model.ReasonManualGrant,
		}, providerID)
	}

	logger.Info("Access check: denied",
		zap.String("userId", user.ID),
		zap.String("providerId", providerID),
		zap.Strings("connectedDomains", user.ConnectedDomains))
	return e.status(model.AccessStatus{
		Granted: false,
		Reason:  model.ReasonDenied,
	}, providerID)
}

func (e *Engine) status(status model.AccessStatus, providerID string) model.AccessStatus {
	status.CheckedAt = e.now().UTC().Format(time.RFC3339)
	status.ProviderID = providerID
	return status
}
