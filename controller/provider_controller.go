// api/controller/provider_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	perks_errors "github.com/akshayraj/perks-portal/api/errors"
	"github.com/akshayraj/perks-portal/api/service"
	"github.com/akshayraj/perks-portal/api/util"
)

type ProviderController struct {
	providerService service.IProviderService
}

func NewProviderController(providerService service.IProviderService) *ProviderController {
	return &ProviderController{
		providerService: providerService,
	}
}

// RegisterAdminRoutes registers the admin provider routes
func (pc *ProviderController) RegisterAdminRoutes(r *gin.RouterGroup) {
	providers := r.Group("/providers")
	{
		providers.GET("", pc.ListProviders)
		providers.PUT("/:id/activate", pc.SwitchProvider)
	}
}

// ListProviders endpoint
func (pc *ProviderController) ListProviders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": pc.providerService.ListProviders(c)})
}

// SwitchProvider endpoint
func (pc *ProviderController) SwitchProvider(c *gin.Context) {
	providerID := c.Param("id")

	if err := pc.providerService.SwitchProvider(c, providerID); err != nil {
		if errors.Is(err, perks_errors.ErrProviderNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Provider not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to switch provider", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
