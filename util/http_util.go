// api/util/http_util.go
package util

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/akshayraj/perks-portal/api/logging"
	"github.com/akshayraj/perks-portal/api/model"
)

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

// GetUserFromContext returns the identity placed on the context by the
// identity middleware, or false when the request is unauthenticated.
func GetUserFromContext(c *gin.Context) (model.UserIdentity, bool) {
	value, exists := c.Get("userIdentity")
	if !exists {
		return model.UserIdentity{}, false
	}
	user, ok := value.(model.UserIdentity)
	return user, ok
}
