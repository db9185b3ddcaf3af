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

// CategoryHandler handles the admin category pages
type CategoryHandler struct {
	pages
	categoryService service.CategoryService
	menuService     service.MenuService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService service.CategoryService, menuService service.MenuService, p pages) *CategoryHandler {
	return &CategoryHandler{
		pages:           p,
		categoryService: categoryService,
		menuService:     menuService,
	}
}

// List handles GET /admin/categories
// @Summary Category list
// @Tags categories
// @Produce html,json
// @Success 200 {object} utils.APIResponse{data=render.Page{data=response.CategoryListResponse}}
// @Failure 500 {object} utils.APIResponse
// @Router /admin/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	h.list(c, http.StatusOK, nil)
}

// Submit handles POST /admin/categories
// @Summary Create or delete a category
// @Description action=create takes the category fields, action=delete takes id. Deleting a category deletes its dishes.
// @Tags categories
// @Accept x-www-form-urlencoded
// @Produce html,json
// @Param action formData string true "create or delete"
// @Param id formData int false "Category id (delete)"
// @Param menu_id formData int false "Parent menu id (create)"
// @Param slug formData string false "Slug (create)"
// @Param name_ru formData string false "Name, Russian (create)"
// @Param name_kz formData string false "Name, Kazakh (create)"
// @Param name_en formData string false "Name, English (create)"
// @Success 303 "Redirect to /admin/categories"
// @Failure 422 {object} utils.APIResponse{data=render.Page{data=response.CategoryListResponse}}
// @Failure 500 {object} utils.APIResponse
// @Router /admin/categories [post]
func (h *CategoryHandler) Submit(c *gin.Context) {
	switch c.PostForm("action") {
	case "create":
		h.create(c)
	case "delete":
		h.delete(c)
	default:
		h.list(c, http.StatusOK, nil)
	}
}

func (h *CategoryHandler) create(c *gin.Context) {
	var in service.CategoryInput
	if err := c.ShouldBind(&in); err != nil {
		h.logger.WithError(err).Warn("Failed to bind category form")
	}

	if _, err := h.categoryService.CreateCategory(&in); err != nil {
		if msg, ok := validationMessage(err); ok {
			h.flash(c, session.FlashDanger, msg)
			h.list(c, http.StatusUnprocessableEntity, &in)
			return
		}
		h.fail(c, err, "Failed to create category")
		return
	}

	h.flash(c, session.FlashSuccess, "Категория создана")
	h.redirect(c, "/admin/categories")
}

func (h *CategoryHandler) delete(c *gin.Context) {
	if id, err := utils.ParseID(c.PostForm("id")); err == nil {
		deleted, err := h.categoryService.DeleteCategory(id)
		if err != nil {
			h.fail(c, err, "Failed to delete category")
			return
		}
		if deleted {
			h.flash(c, session.FlashSuccess, "Категория удалена")
		}
	}
	h.redirect(c, "/admin/categories")
}

func (h *CategoryHandler) list(c *gin.Context, status int, form *service.CategoryInput) {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		h.fail(c, err, "Failed to list categories")
		return
	}
	menus, err := h.menuService.ListMenus()
	if err != nil {
		h.fail(c, err, "Failed to list menus")
		return
	}

	data := response.CategoryListResponse{Categories: categories, Menus: menus}
	if form != nil {
		data.Form = form
	}
	h.render(c, status, render.PageCategories, "Категории", data)
}

// Edit handles GET /admin/categories/:id/edit
// @Summary Category edit form
// @Tags categories
// @Produce html,json
// @Param id path int true "Category id"
// @Success 200 {object} utils.APIResponse{data=render.Page{data=response.CategoryEditResponse}}
// @Failure 404 {object} utils.APIResponse
// @Router /admin/categories/{id}/edit [get]
func (h *CategoryHandler) Edit(c *gin.Context) {
	h.edit(c, http.StatusOK)
}

// Update handles POST /admin/categories/:id/edit
// @Summary Update a category
// @Tags categories
// @Accept x-www-form-urlencoded
// @Produce html,json
// @Param id path int true "Category id"
// @Param action formData string true "update"
// @Param menu_id formData int true "Parent menu id"
// @Param slug formData string true "Slug"
// @Param name_ru formData string true "Name, Russian"
// @Param name_kz formData string true "Name, Kazakh"
// @Param name_en formData string true "Name, English"
// @Success 303 "Redirect to /admin/categories"
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse{data=render.Page{data=response.CategoryEditResponse}}
// @Failure 500 {object} utils.APIResponse
// @Router /admin/categories/{id}/edit [post]
func (h *CategoryHandler) Update(c *gin.Context) {
	if c.PostForm("action") != "update" {
		h.edit(c, http.StatusOK)
		return
	}

	id, err := utils.GetIDParam(c)
	if err != nil {
		h.notFound(c)
		return
	}

	var in service.CategoryInput
	if err := c.ShouldBind(&in); err != nil {
		h.logger.WithError(err).Warn("Failed to bind category form")
	}

	if _, err := h.categoryService.UpdateCategory(id, &in); err != nil {
		if msg, ok := validationMessage(err); ok {
			h.flash(c, session.FlashDanger, msg)
			h.edit(c, http.StatusUnprocessableEntity)
			return
		}
		h.fail(c, err, "Failed to update category")
		return
	}

	h.flash(c, session.FlashSuccess, "Категория обновлена")
	h.redirect(c, "/admin/categories")
}

func (h *CategoryHandler) edit(c *gin.Context, status int) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		h.notFound(c)
		return
	}

	category, err := h.categoryService.GetCategory(id)
	if err != nil {
		h.fail(c, err, "Failed to load category")
		return
	}
	menus, err := h.menuService.ListMenus()
	if err != nil {
		h.fail(c, err, "Failed to list menus")
		return
	}

	h.render(c, status, render.PageCategoryEdit, "Категория", response.CategoryEditResponse{Category: category, Menus: menus})
}
