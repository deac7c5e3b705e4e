// api/controller/access_request_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	perks_errors "github.com/akshayraj/perks-portal/api/errors"
	"github.com/akshayraj/perks-portal/api/model"
	"github.com/akshayraj/perks-portal/api/service"
	"github.com/akshayraj/perks-portal/api/util"
)

type AccessRequestController struct {
	requestService service.IAccessRequestService
}

func NewAccessRequestController(requestService service.IAccessRequestService) *AccessRequestController {
	return &AccessRequestController{
		requestService: requestService,
	}
}

// RegisterRoutes registers the API routes
func (rc *AccessRequestController) RegisterRoutes(r *gin.RouterGroup) {
	requests := r.Group("/access-requests")
	{
		requests.POST("", rc.SubmitRequest)
	}
}

// RegisterAdminRoutes registers the admin review routes
func (rc *AccessRequestController) RegisterAdminRoutes(r *gin.RouterGroup) {
	requests := r.Group("/access-requests")
	{
		requests.GET("", rc.ListRequests)
		requests.PUT("/:id/review", rc.ReviewRequest)
	}
}

// SubmitRequest endpoint
func (rc *AccessRequestController) SubmitRequest(c *gin.Context) {
	var request model.AccessRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid access request data", perks_errors.ErrInvalidRequestData)
		return
	}

	// The requester's own email wins over whatever was posted.
	if user, ok := util.GetUserFromContext(c); ok {
		request.UserEmail = user.Email
	}

	created, err := rc.requestService.SubmitRequest(c, request)
	if err != nil {
		switch {
		case errors.Is(err, perks_errors.ErrRequestConflict):
			util.RespondWithError(c, http.StatusConflict, "Access request already exists", err)
		case errors.Is(err, perks_errors.ErrInvalidRequestData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid access request data", err)
		case errors.Is(err, perks_errors.ErrDatabaseOperation):
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to submit access request", perks_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListRequests endpoint
func (rc *AccessRequestController) ListRequests(c *gin.Context) {
	status := model.RequestStatus(c.Query("status"))

	requests, err := rc.requestService.ListRequests(c, status)
	if err != nil {
		if errors.Is(err, perks_errors.ErrInvalidRequestData) {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid status filter", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to list access requests", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": requests})
}

// ReviewRequest endpoint
func (rc *AccessRequestController) ReviewRequest(c *gin.Context) {
	requestID := c.Param("id")

	var body struct {
		Status model.RequestStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid review data", perks_errors.ErrInvalidRequestData)
		return
	}

	updated, err := rc.requestService.ReviewRequest(c, requestID, body.Status)
	if err != nil {
		switch {
		case errors.Is(err, perks_errors.ErrRequestNotFound):
			util.RespondWithError(c, http.StatusNotFound, "Access request not found", err)
		case errors.Is(err, perks_errors.ErrInvalidRequestData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid review status", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to review access request", err)
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}
