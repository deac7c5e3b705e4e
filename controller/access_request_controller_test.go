// api/controller/access_request_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"

	"github.com/akshayraj/perks-portal/api/controller"
	perks_errors "github.com/akshayraj/perks-portal/api/errors"
	logger "github.com/akshayraj/perks-portal/api/logging"
	"github.com/akshayraj/perks-portal/api/model"
	"github.com/akshayraj/perks-portal/api/test/mock"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "perks-controller-test")
	if err != nil {
		panic(err)
	}
	logger.InitLogger(dir)

	code := m.Run()

	logger.Sync()
	os.RemoveAll(dir)
	os.Exit(code)
}

func setupRouter(requestService *mock.MockAccessRequestService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	requestController := controller.NewAccessRequestController(requestService)
	api := r.Group("/")
	requestController.RegisterRoutes(api)
	requestController.RegisterAdminRoutes(api)
	return r
}

func TestAccessRequestController(t *testing.T) {
	t.Run("SubmitRequest_Success", func(t *testing.T) {
		requestService := new(mock.MockAccessRequestService)
		requestService.On("SubmitRequest", tmock.Anything, tmock.Anything).
			Return(&model.AccessRequest{ID: "r1", UserEmail: "founder@unlisted.com", Status: model.RequestPending}, nil)
		router := setupRouter(requestService)

		body := strings.NewReader(`{"userEmail":"founder@unlisted.com","company":"Unlisted"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/access-requests", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var created model.AccessRequest
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, "r1", created.ID)
		assert.Equal(t, model.RequestPending, created.Status)
	})

	t.Run("SubmitRequest_Conflict", func(t *testing.T) {
		requestService := new(mock.MockAccessRequestService)
		requestService.On("SubmitRequest", tmock.Anything, tmock.Anything).
			Return(nil, perks_errors.ErrRequestConflict)
		router := setupRouter(requestService)

		body := strings.NewReader(`{"userEmail":"founder@unlisted.com"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/access-requests", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("SubmitRequest_InvalidData", func(t *testing.T) {
		requestService := new(mock.MockAccessRequestService)
		requestService.On("SubmitRequest", tmock.Anything, tmock.Anything).
			Return(nil, perks_errors.ErrInvalidRequestData)
		router := setupRouter(requestService)

		body := strings.NewReader(`{"userEmail":"not-an-email"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/access-requests", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ListRequests_Success", func(t *testing.T) {
		requestService := new(mock.MockAccessRequestService)
		requestService.On("ListRequests", tmock.Anything, model.RequestPending).
			Return([]model.AccessRequest{{ID: "r1"}, {ID: "r2"}}, nil)
		router := setupRouter(requestService)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/access-requests?status=pending", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ReviewRequest_Success", func(t *testing.T) {
		requestService := new(mock.MockAccessRequestService)
		requestService.On("ReviewRequest", tmock.Anything, "r1", model.RequestApproved).
			Return(&model.AccessRequest{ID: "r1", Status: model.RequestApproved}, nil)
		router := setupRouter(requestService)

		body := strings.NewReader(`{"status":"approved"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/access-requests/r1/review", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ReviewRequest_NotFound", func(t *testing.T) {
		requestService := new(mock.MockAccessRequestService)
		requestService.On("ReviewRequest", tmock.Anything, "missing", model.RequestDenied).
			Return(nil, perks_errors.ErrRequestNotFound)
		router := setupRouter(requestService)

		body := strings.NewReader(`{"status":"denied"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/access-requests/missing/review", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
