package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"menu-cms-svc/internal/models/response"
	"menu-cms-svc/internal/render"
	"menu-cms-svc/internal/service"
	"menu-cms-svc/internal/session"
	"menu-cms-svc/pkg/utils"
)

// MenuHandler handles the admin menu pages
type MenuHandler struct {
	pages
	menuService service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService service.MenuService, p pages) *MenuHandler {
	return &MenuHandler{
		pages:       p,
		menuService: menuService,
	}
}

// List handles GET /admin/menus
// @Summary Menu list
// @Tags menus
// @Produce html,json
// @Success 200 {object} utils.APIResponse{data=render.Page{data=response.MenuListResponse}}
// @Failure 500 {object} utils.APIResponse
// @Router /admin/menus [get]
func (h *MenuHandler) List(c *gin.Context) {
	h.list(c, http.StatusOK, nil)
}

// Submit handles POST /admin/menus
// @Summary Create or delete a menu
// @Description action=create takes the menu fields, action=delete takes id. Deleting a menu deletes its categories and their dishes.
// @Tags menus
// @Accept multipart/form-data
// @Produce html,json
// @Param action formData string true "create or delete"
// @Param id formData int false "Menu id (delete)"
// @Param slug formData string false "Slug (create)"
// @Param title_ru formData string false "Title, Russian (create)"
// @Param title_kz formData string false "Title, Kazakh (create)"
// @Param title_en formData string false "Title, English (create)"
// @Param image formData file false "Image (png, jpg, jpeg, webp, gif)"
// @Success 303 "Redirect to /admin/menus"
// @Failure 422 {object} utils.APIResponse{data=render.Page{data=response.MenuListResponse}}
// @Failure 500 {object} utils.APIResponse
// @Router /admin/menus [post]
func (h *MenuHandler) Submit(c *gin.Context) {
	switch c.PostForm("action") {
	case "create":
		h.create(c)
	case "delete":
		h.delete(c)
	default:
		h.list(c, http.StatusOK, nil)
	}
}

func (h *MenuHandler) create(c *gin.Context) {
	var in service.MenuInput
	if err := c.ShouldBind(&in); err != nil {
		h.logger.WithError(err).Warn("Failed to bind menu form")
	}
	in.Image, _ = c.FormFile("image")

	if _, err := h.menuService.CreateMenu(&in); err != nil {
		if msg, ok := validationMessage(err); ok {
			h.flash(c, session.FlashDanger, msg)
			h.list(c, http.StatusUnprocessableEntity, &in)
			return
		}
		h.fail(c, err, "Failed to create menu")
		return
	}

	h.flash(c, session.FlashSuccess, "Меню добавлено")
	h.redirect(c, "/admin/menus")
}

func (h *MenuHandler) delete(c *gin.Context) {
	if id, err := utils.ParseID(c.PostForm("id")); err == nil {
		deleted, err := h.menuService.DeleteMenu(id)
		if err != nil {
			h.fail(c, err, "Failed to delete menu")
			return
		}
		if deleted {
			h.flash(c, session.FlashSuccess, "Меню удалено")
		}
	}
	h.redirect(c, "/admin/menus")
}

func (h *MenuHandler) list(c *gin.Context, status int, form *service.MenuInput) {
	menus, err := h.menuService.ListMenus()
	if err != nil {
		h.fail(c, err, "Failed to list menus")
		return
	}

	data := response.MenuListResponse{Menus: menus}
	if form != nil {
		data.Form = form
	}
	h.render(c, status, render.PageMenus, "Меню", data)
}

// Edit handles GET /admin/menus/:id/edit
// @Summary Menu edit form
// @Tags menus
// @Produce html,json
// @Param id path int true "Menu id"
// @Success 200 {object} utils.APIResponse{data=render.Page{data=response.MenuEditResponse}}
// @Failure 404 {object} utils.APIResponse
// @Router /admin/menus/{id}/edit [get]
func (h *MenuHandler) Edit(c *gin.Context) {
	h.edit(c, http.StatusOK)
}

// Update handles POST /admin/menus/:id/edit
// @Summary Update a menu
// @Description The stored image is kept unless a new accepted image is uploaded
// @Tags menus
// @Accept multipart/form-data
// @Produce html,json
// @Param id path int true "Menu id"
// @Param action formData string true "update"
// @Param slug formData string true "Slug"
// @Param title_ru formData string true "Title, Russian"
// @Param title_kz formData string true "Title, Kazakh"
// @Param title_en formData string true "Title, English"
// @Param image formData file false "Image (png, jpg, jpeg, webp, gif)"
// @Success 303 "Redirect to /admin/menus"
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse{data=render.Page{data=response.MenuEditResponse}}
// @Failure 500 {object} utils.APIResponse
// @Router /admin/menus/{id}/edit [post]
func (h *MenuHandler) Update(c *gin.Context) {
	if c.PostForm("action") != "update" {
		h.edit(c, http.StatusOK)
		return
	}

	id, err := utils.GetIDParam(c)
	if err != nil {
		h.notFound(c)
		return
	}

	var in service.MenuInput
	if err := c.ShouldBind(&in); err != nil {
		h.logger.WithError(err).Warn("Failed to bind menu form")
	}
	in.Image, _ = c.FormFile("image")

	if _, err := h.menuService.UpdateMenu(id, &in); err != nil {
		if msg, ok := validationMessage(err); ok {
			h.flash(c, session.FlashDanger, msg)
			h.edit(c, http.StatusUnprocessableEntity)
			return
		}
		h.fail(c, err, "Failed to update menu")
		return
	}

	h.flash(c, session.FlashSuccess, "Меню обновлено")
	h.redirect(c, "/admin/menus")
}

// edit renders the form from the stored menu
func (h *MenuHandler) edit(c *gin.Context, status int) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		h.notFound(c)
		return
	}

	menu, err := h.menuService.GetMenu(id)
	if err != nil {
		h.fail(c, err, "Failed to load menu")
		return
	}

	h.render(c, status, render.PageMenuEdit, "Меню", response.MenuEditResponse{Menu: menu})
}
