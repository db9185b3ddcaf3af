package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"menu-cms-svc/pkg/logger"
	"menu-cms-svc/pkg/utils"
)

// ErrorHandler turns a panicking handler into a 500 response
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		err := fmt.Errorf("panic: %v", recovered)
		log.WithError(err).WithField("path", c.Request.URL.Path).Error("Recovered from panic")
		utils.InternalServerErrorResponse(c, "Internal server error", err)
	})
}

// NoRouteHandler answers unknown paths
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.NotFoundResponse(c, fmt.Sprintf("Route %s not found", c.Request.URL.Path))
	}
}

// NoMethodHandler answers known paths called with an unsupported method
func NoMethodHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.MethodNotAllowedResponse(c, fmt.Sprintf("Method %s not allowed", c.Request.Method))
	}
}
