// api/controller/vendor_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	perks_errors "github.com/akshayraj/perks-portal/api/errors"
	"github.com/akshayraj/perks-portal/api/service"
	"github.com/akshayraj/perks-portal/api/util"
	helper_util "github.com/akshayraj/perks-portal/api/util/helper"
)

type VendorController struct {
	vendorService service.IVendorService
}

func NewVendorController(vendorService service.IVendorService) *VendorController {
	return &VendorController{
		vendorService: vendorService,
	}
}

// RegisterRoutes registers the API routes
func (vc *VendorController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/vendors", vc.GetCatalog)
	r.GET("/offers", vc.ListOffers)
}

// GetCatalog endpoint
func (vc *VendorController) GetCatalog(c *gin.Context) {
	page, pageSize, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	catalog, err := vc.vendorService.GetCatalog(c, page, pageSize)
	if err != nil {
		vc.respondServiceError(c, err, "Failed to fetch vendor catalog")
		return
	}

	c.JSON(http.StatusOK, catalog)
}

// ListOffers endpoint
func (vc *VendorController) ListOffers(c *gin.Context) {
	page, pageSize, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	offers, err := vc.vendorService.ListOffers(c, c.Query("vendor_id"), page, pageSize)
	if err != nil {
		vc.respondServiceError(c, err, "Failed to fetch offers")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": offers})
}

func (vc *VendorController) respondServiceError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, perks_errors.ErrNoActiveProvider):
		util.RespondWithError(c, http.StatusServiceUnavailable, "No active provider configured", err)
	case errors.Is(err, perks_errors.ErrUpstreamUnavailable):
		util.RespondWithError(c, http.StatusBadGateway, "Deals provider unavailable", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, message, err)
	}
}
