package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"menu-cms-svc/internal/session"
)

// LoginPath is where unauthenticated admin requests are sent
const LoginPath = "/admin/login"

// Sessions attaches the decoded session to the request context
func Sessions(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(session.ContextKey, manager.Load(c.Request))
		c.Next()
	}
}

// RequireAdmin redirects to the login page unless the session is an admin one.
// The route body never runs for anonymous requests.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.FromContext(c).IsAdmin() {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
