// api/controller/access_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akshayraj/perks-portal/api/access"
	perks_errors "github.com/akshayraj/perks-portal/api/errors"
	"github.com/akshayraj/perks-portal/api/middleware"
	"github.com/akshayraj/perks-portal/api/util"
)

// AccessController exposes the user-facing access endpoints: the status check
// the portal frontend branches on, and a refresh that bypasses the cookie.
type AccessController struct {
	resolver  *access.Resolver
	providers middleware.ActiveProviderSource
}

func NewAccessController(resolver *access.Resolver, providers middleware.ActiveProviderSource) *AccessController {
	return &AccessController{
		resolver:  resolver,
		providers: providers,
	}
}

// RegisterRoutes registers the API routes
func (ac *AccessController) RegisterRoutes(r *gin.RouterGroup) {
	accessRoutes := r.Group("/access")
	{
		accessRoutes.GET("/status", ac.GetStatus)
		accessRoutes.POST("/refresh", ac.RefreshStatus)
	}
}

// GetStatus endpoint: cookie-cached when fresh, recomputed otherwise.
func (ac *AccessController) GetStatus(c *gin.Context) {
	user, ok := util.GetUserFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", perks_errors.ErrUnauthorized)
		return
	}

	status := ac.resolver.Resolve(c, user, ac.providers.ActiveProviderID())
	c.JSON(http.StatusOK, status)
}

// RefreshStatus endpoint: ignores the cached cookie so the decision tree
// always runs, e.g. right after an admin approves a request.
func (ac *AccessController) RefreshStatus(c *gin.Context) {
	user, ok := util.GetUserFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", perks_errors.ErrUnauthorized)
		return
	}

	status := ac.resolver.Refresh(c, user, ac.providers.ActiveProviderID())
	c.JSON(http.StatusOK, status)
}
