package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"menu-cms-svc/internal/render"
	"menu-cms-svc/internal/service"
	"menu-cms-svc/internal/session"
)

// DashboardHandler handles the admin dashboard and settings form
type DashboardHandler struct {
	pages
	dashboardService service.DashboardService
	settingsService  service.SettingsService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService, settingsService service.SettingsService, p pages) *DashboardHandler {
	return &DashboardHandler{
		pages:            p,
		dashboardService: dashboardService,
		settingsService:  settingsService,
	}
}

// Show handles GET /admin
// @Summary Admin dashboard
// @Description Entity counts and the current settings
// @Tags dashboard
// @Produce html,json
// @Success 200 {object} utils.APIResponse{data=render.Page{data=response.DashboardResponse}}
// @Failure 500 {object} utils.APIResponse
// @Router /admin [get]
func (h *DashboardHandler) Show(c *gin.Context) {
	dashboard, err := h.dashboardService.GetDashboard()
	if err != nil {
		h.fail(c, err, "Failed to load dashboard")
		return
	}

	h.render(c, http.StatusOK, render.PageDashboard, "Панель", dashboard)
}

// UpdateSettings handles POST /admin
// @Summary Update settings
// @Description Blank fields keep their stored value
// @Tags dashboard
// @Accept x-www-form-urlencoded
// @Param phone formData string false "Contact phone"
// @Param bg formData string false "Background color"
// @Param card formData string false "Card color"
// @Param muted formData string false "Muted text color"
// @Param text formData string false "Text color"
// @Param brand formData string false "Brand color"
// @Param accent formData string false "Accent color"
// @Param border formData string false "Border color"
// @Param brand_font formData string false "Font family"
// @Success 303 "Redirect to /admin"
// @Failure 500 {object} utils.APIResponse
// @Router /admin [post]
func (h *DashboardHandler) UpdateSettings(c *gin.Context) {
	var in service.SettingsInput
	if err := c.ShouldBind(&in); err != nil {
		h.logger.WithError(err).Warn("Failed to bind settings form")
	}

	if _, err := h.settingsService.UpdateSettings(&in); err != nil {
		h.fail(c, err, "Failed to update settings")
		return
	}

	h.flash(c, session.FlashSuccess, "Настройки обновлены")
	h.redirect(c, "/admin")
}
