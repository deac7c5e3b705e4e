// api/router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akshayraj/perks-portal/api/access"
	"github.com/akshayraj/perks-portal/api/controller"
	"github.com/akshayraj/perks-portal/api/middleware"
)

func SetupRouter(
	controllers *controller.Controllers,
	resolver *access.Resolver,
	providers middleware.ActiveProviderSource,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))

	api := router.Group("/api/v1")
	api.Use(middleware.IdentityMiddleware())

	// Open to any authenticated user: the status check and the request form.
	controllers.Access.RegisterRoutes(api)
	controllers.AccessRequest.RegisterRoutes(api)

	// Perks data sits behind the cookie-backed guard.
	perks := api.Group("")
	perks.Use(middleware.AccessGuard(resolver, providers))
	controllers.Vendor.RegisterRoutes(perks)

	// Admin surface: provider switching, whitelist management, request review.
	admin := api.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	controllers.Provider.RegisterAdminRoutes(admin)
	controllers.Whitelist.RegisterAdminRoutes(admin)
	controllers.AccessRequest.RegisterAdminRoutes(admin)

	return router
}
