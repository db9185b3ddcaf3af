package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"menu-cms-svc/internal/i18n"
	"menu-cms-svc/internal/render"
	"menu-cms-svc/internal/service"
)

// PublicHandler serves the visitor facing menu page
type PublicHandler struct {
	pages
	catalogService service.CatalogService
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(catalogService service.CatalogService, p pages) *PublicHandler {
	return &PublicHandler{
		pages:          p,
		catalogService: catalogService,
	}
}

// Index handles GET /
// @Summary Public menu
// @Description All menus, categories and dishes as flat records plus the contact phone and theme
// @Tags public
// @Produce html,json
// @Param lang query string false "Display language (ru, kz, en)"
// @Success 200 {object} utils.APIResponse{data=render.Page{data=response.PublicMenuResponse}}
// @Failure 500 {object} utils.APIResponse
// @Router / [get]
func (h *PublicHandler) Index(c *gin.Context) {
	lang, persist := i18n.Resolve(c.Request)
	if persist {
		i18n.SetLanguageCookie(c.Writer, lang)
	}

	view, err := h.catalogService.PublicMenu(lang)
	if err != nil {
		h.fail(c, err, "Failed to assemble public menu")
		return
	}

	h.render(c, http.StatusOK, render.PagePublic, "", view)
}
