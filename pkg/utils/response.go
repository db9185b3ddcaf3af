package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every JSON response is wrapped in
type APIResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message" example:"Operation completed successfully"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty" example:""`
}

// JSONResponse writes a successful envelope with an explicit status
func JSONResponse(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, APIResponse{
		Success: status < http.StatusBadRequest,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes an error envelope with an explicit status
func ErrorResponse(c *gin.Context, status int, message string, err error) {
	resp := APIResponse{
		Success: false,
		Message: message,
	}
	if err != nil && gin.Mode() != gin.ReleaseMode {
		resp.Error = err.Error()
	}
	c.AbortWithStatusJSON(status, resp)
}

// NotFoundResponse writes a 404 response
func NotFoundResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, message, nil)
}

// MethodNotAllowedResponse writes a 405 response
func MethodNotAllowedResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusMethodNotAllowed, message, nil)
}

// InternalServerErrorResponse writes a 500 response
func InternalServerErrorResponse(c *gin.Context, message string, err error) {
	ErrorResponse(c, http.StatusInternalServerError, message, err)
}
