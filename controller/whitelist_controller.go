// api/controller/whitelist_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	perks_errors "github.com/akshayraj/perks-portal/api/errors"
	"github.com/akshayraj/perks-portal/api/model"
	"github.com/akshayraj/perks-portal/api/service"
	"github.com/akshayraj/perks-portal/api/util"
	helper_util "github.com/akshayraj/perks-portal/api/util/helper"
)

type WhitelistController struct {
	whitelistService service.IWhitelistService
}

func NewWhitelistController(whitelistService service.IWhitelistService) *WhitelistController {
	return &WhitelistController{
		whitelistService: whitelistService,
	}
}

// RegisterAdminRoutes registers the admin whitelist routes
func (wc *WhitelistController) RegisterAdminRoutes(r *gin.RouterGroup) {
	whitelist := r.Group("/whitelist/domains")
	{
		whitelist.GET("", wc.ListDomains)
		whitelist.POST("", wc.AddDomain)
		whitelist.DELETE("/:id", wc.RemoveDomain)
	}
}

// ListDomains endpoint
func (wc *WhitelistController) ListDomains(c *gin.Context) {
	page, pageSize, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	domains, err := wc.whitelistService.ListDomains(c, page, pageSize)
	if err != nil {
		wc.respondServiceError(c, err, "Failed to list whitelist domains")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": domains})
}

// AddDomain endpoint
func (wc *WhitelistController) AddDomain(c *gin.Context) {
	var domain model.WhitelistDomain
	if err := c.ShouldBindJSON(&domain); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid whitelist domain data", perks_errors.ErrInvalidDomainData)
		return
	}

	created, err := wc.whitelistService.AddDomain(c, domain)
	if err != nil {
		if errors.Is(err, perks_errors.ErrInvalidDomainData) {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid whitelist domain data", err)
			return
		}
		wc.respondServiceError(c, err, "Failed to add whitelist domain")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// RemoveDomain endpoint
func (wc *WhitelistController) RemoveDomain(c *gin.Context) {
	domainID := c.Param("id")

	if err := wc.whitelistService.RemoveDomain(c, domainID); err != nil {
		wc.respondServiceError(c, err, "Failed to remove whitelist domain")
		return
	}

	c.Status(http.StatusNoContent)
}

func (wc *WhitelistController) respondServiceError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, perks_errors.ErrNoActiveProvider):
		util.RespondWithError(c, http.StatusServiceUnavailable, "No active provider configured", err)
	case errors.Is(err, perks_errors.ErrUpstreamUnavailable):
		util.RespondWithError(c, http.StatusBadGateway, "Deals provider unavailable", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, message, err)
	}
}
