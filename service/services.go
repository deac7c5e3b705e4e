// api/service/services.go
package service

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akshayraj/perks-portal/api/access"
	"github.com/akshayraj/perks-portal/api/dao"
	"github.com/akshayraj/perks-portal/api/upstream"
	"github.com/akshayraj/perks-portal/api/util"
)

type Services struct {
	Provider      IProviderService
	Vendor        IVendorService
	Whitelist     IWhitelistService
	AccessRequest IAccessRequestService
}

func InitializeServices(
	pool *pgxpool.Pool,
	proven *upstream.ProvenClient,
	caches *access.Caches,
	validationUtil *util.ValidationUtil,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	requestDAO := dao.NewAccessRequestDAO(pool)

	providerService, err := NewProviderService(caches, notificationSvc, eventBus)
	if err != nil {
		return nil, err
	}

	services := &Services{
		Provider:      providerService,
		Vendor:        NewVendorService(proven, providerService),
		Whitelist:     NewWhitelistService(proven, providerService, caches, validationUtil),
		AccessRequest: NewAccessRequestService(requestDAO, validationUtil, notificationSvc, eventBus),
	}

	return services, nil
}
