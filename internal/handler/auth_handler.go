package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"menu-cms-svc/internal/middleware"
	"menu-cms-svc/internal/render"
	"menu-cms-svc/internal/service"
	"menu-cms-svc/internal/session"
)

// AuthHandler handles admin login and logout
type AuthHandler struct {
	pages
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService, p pages) *AuthHandler {
	return &AuthHandler{
		pages:       p,
		authService: authService,
	}
}

// LoginForm handles GET /admin/login
// @Summary Login form
// @Tags auth
// @Produce html,json
// @Success 200 {object} utils.APIResponse{data=render.Page}
// @Router /admin/login [get]
func (h *AuthHandler) LoginForm(c *gin.Context) {
	h.render(c, http.StatusOK, render.PageLogin, "Вход", nil)
}

// Login handles POST /admin/login
// @Summary Log in as admin
// @Description Compares the password with the configured admin password and starts a long-lived admin session
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html,json
// @Param password formData string true "Admin password"
// @Success 303 "Redirect to /admin"
// @Failure 401 {object} utils.APIResponse{data=render.Page}
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	s := session.FromContext(c)
	if !h.authService.Authenticate(c.PostForm("password")) {
		s.AddFlash(session.FlashDanger, "Неверный пароль")
		h.render(c, http.StatusUnauthorized, render.PageLogin, "Вход", nil)
		return
	}

	s.SetAdmin()
	s.AddFlash(session.FlashSuccess, "Вы вошли как админ.")
	h.redirect(c, "/admin")
}

// Logout handles GET /admin/logout
// @Summary Log out
// @Description Clears the whole session
// @Tags auth
// @Success 303 "Redirect to /admin/login"
// @Router /admin/logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	s := session.FromContext(c)
	s.Clear()
	s.AddFlash(session.FlashInfo, "Вы вышли.")
	h.redirect(c, middleware.LoginPath)
}
