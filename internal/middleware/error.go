package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"society-admin-svc/pkg/logger"
	"society-admin-svc/pkg/utils"
)

// ErrorHandler recovers from panics and answers with the standard error envelope
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithFields(map[string]interface{}{
			"panic":  fmt.Sprint(recovered),
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("Recovered from panic")
		utils.InternalServerErrorResponse(c, "Internal server error", fmt.Errorf("%v", recovered))
		c.Abort()
	})
}

// NoRouteHandler answers unknown routes
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.NotFoundResponse(c, "Route not found")
	}
}

// NoMethodHandler answers known routes called with an unsupported method
func NoMethodHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.ErrorResponse(c, http.StatusMethodNotAllowed, "Method not allowed", nil)
	}
}
