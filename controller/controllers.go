// api/controller/controllers.go
package controller

import (
	"github.com/akshayraj/perks-portal/api/access"
	"github.com/akshayraj/perks-portal/api/middleware"
	"github.com/akshayraj/perks-portal/api/service"
)

type Controllers struct {
	Access        *AccessController
	AccessRequest *AccessRequestController
	Provider      *ProviderController
	Whitelist     *WhitelistController
	Vendor        *VendorController
}

func InitializeControllers(services *service.Services, resolver *access.Resolver, providers middleware.ActiveProviderSource) *Controllers {
	return &Controllers{
		Access:        NewAccessController(resolver, providers),
		AccessRequest: NewAccessRequestController(services.AccessRequest),
		Provider:      NewProviderController(services.Provider),
		Whitelist:     NewWhitelistController(services.Whitelist),
		Vendor:        NewVendorController(services.Vendor),
	}
}
