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

// DishHandler handles the admin dish pages
type DishHandler struct {
	pages
	dishService     service.DishService
	categoryService service.CategoryService
}

// NewDishHandler creates a new dish handler
func NewDishHandler(dishService service.DishService, categoryService service.CategoryService, p pages) *DishHandler {
	return &DishHandler{
		pages:           p,
		dishService:     dishService,
		categoryService: categoryService,
	}
}

// List handles GET /admin/dishes
// @Summary Dish list, newest first
// @Tags dishes
// @Produce html,json
// @Success 200 {object} utils.APIResponse{data=render.Page{data=response.DishListResponse}}
// @Failure 500 {object} utils.APIResponse
// @Router /admin/dishes [get]
func (h *DishHandler) List(c *gin.Context) {
	h.list(c, http.StatusOK, nil)
}

// Submit handles POST /admin/dishes
// @Summary Create or delete a dish
// @Description action=create takes the dish fields, action=delete takes id. An unparsable price is stored as 0.
// @Tags dishes
// @Accept multipart/form-data
// @Produce html,json
// @Param action formData string true "create or delete"
// @Param id formData int false "Dish id (delete)"
// @Param category_id formData int false "Parent category id (create)"
// @Param slug formData string false "Slug (create)"
// @Param title_ru formData string false "Title, Russian (create)"
// @Param title_kz formData string false "Title, Kazakh (create)"
// @Param title_en formData string false "Title, English (create)"
// @Param price formData string false "Price in whole currency units"
// @Param ing_ru formData string false "Ingredients, Russian"
// @Param ing_kz formData string false "Ingredients, Kazakh"
// @Param ing_en formData string false "Ingredients, English"
// @Param image formData file false "Image (png, jpg, jpeg, webp, gif)"
// @Success 303 "Redirect to /admin/dishes"
// @Failure 422 {object} utils.APIResponse{data=render.Page{data=response.DishListResponse}}
// @Failure 500 {object} utils.APIResponse
// @Router /admin/dishes [post]
func (h *DishHandler) Submit(c *gin.Context) {
	switch c.PostForm("action") {
	case "create":
		h.create(c)
	case "delete":
		h.delete(c)
	default:
		h.list(c, http.StatusOK, nil)
	}
}

func (h *DishHandler) create(c *gin.Context) {
	var in service.DishInput
	if err := c.ShouldBind(&in); err != nil {
		h.logger.WithError(err).Warn("Failed to bind dish form")
	}
	in.Image, _ = c.FormFile("image")

	if _, err := h.dishService.CreateDish(&in); err != nil {
		if msg, ok := validationMessage(err); ok {
			h.flash(c, session.FlashDanger, msg)
			h.list(c, http.StatusUnprocessableEntity, &in)
			return
		}
		h.fail(c, err, "Failed to create dish")
		return
	}

	h.flash(c, session.FlashSuccess, "Блюдо добавлено")
	h.redirect(c, "/admin/dishes")
}

func (h *DishHandler) delete(c *gin.Context) {
	if id, err := utils.ParseID(c.PostForm("id")); err == nil {
		deleted, err := h.dishService.DeleteDish(id)
		if err != nil {
			h.fail(c, err, "Failed to delete dish")
			return
		}
		if deleted {
			h.flash(c, session.FlashSuccess, "Блюдо удалено")
		}
	}
	h.redirect(c, "/admin/dishes")
}

func (h *DishHandler) list(c *gin.Context, status int, form *service.DishInput) {
	dishes, err := h.dishService.ListDishes()
	if err != nil {
		h.fail(c, err, "Failed to list dishes")
		return
	}
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		h.fail(c, err, "Failed to list categories")
		return
	}

	data := response.DishListResponse{Dishes: dishes, Categories: categories}
	if form != nil {
		data.Form = form
	}
	h.render(c, status, render.PageDishes, "Блюда", data)
}

// Edit handles GET /admin/dishes/:id/edit
// @Summary Dish edit form
// @Tags dishes
// @Produce html,json
// @Param id path int true "Dish id"
// @Success 200 {object} utils.APIResponse{data=render.Page{data=response.DishEditResponse}}
// @Failure 404 {object} utils.APIResponse
// @Router /admin/dishes/{id}/edit [get]
func (h *DishHandler) Edit(c *gin.Context) {
	h.edit(c, http.StatusOK)
}

// Update handles POST /admin/dishes/:id/edit
// @Summary Update a dish
// @Description The stored image is kept unless a new accepted image is uploaded
// @Tags dishes
// @Accept multipart/form-data
// @Produce html,json
// @Param id path int true "Dish id"
// @Param action formData string true "update"
// @Param category_id formData int true "Parent category id"
// @Param slug formData string true "Slug"
// @Param title_ru formData string true "Title, Russian"
// @Param title_kz formData string true "Title, Kazakh"
// @Param title_en formData string true "Title, English"
// @Param price formData string false "Price in whole currency units"
// @Param ing_ru formData string false "Ingredients, Russian"
// @Param ing_kz formData string false "Ingredients, Kazakh"
// @Param ing_en formData string false "Ingredients, English"
// @Param image formData file false "Image (png, jpg, jpeg, webp, gif)"
// @Success 303 "Redirect to /admin/dishes"
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse{data=render.Page{data=response.DishEditResponse}}
// @Failure 500 {object} utils.APIResponse
// @Router /admin/dishes/{id}/edit [post]
func (h *DishHandler) Update(c *gin.Context) {
	if c.PostForm("action") != "update" {
		h.edit(c, http.StatusOK)
		return
	}

	id, err := utils.GetIDParam(c)
	if err != nil {
		h.notFound(c)
		return
	}

	var in service.DishInput
	if err := c.ShouldBind(&in); err != nil {
		h.logger.WithError(err).Warn("Failed to bind dish form")
	}
	in.Image, _ = c.FormFile("image")

	if _, err := h.dishService.UpdateDish(id, &in); err != nil {
		if msg, ok := validationMessage(err); ok {
			h.flash(c, session.FlashDanger, msg)
			h.edit(c, http.StatusUnprocessableEntity)
			return
		}
		h.fail(c, err, "Failed to update dish")
		return
	}

	h.flash(c, session.FlashSuccess, "Блюдо обновлено")
	h.redirect(c, "/admin/dishes")
}

func (h *DishHandler) edit(c *gin.Context, status int) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		h.notFound(c)
		return
	}

	dish, err := h.dishService.GetDish(id)
	if err != nil {
		h.fail(c, err, "Failed to load dish")
		return
	}
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		h.fail(c, err, "Failed to list categories")
		return
	}

	h.render(c, status, render.PageDishEdit, "Блюдо", response.DishEditResponse{Dish: dish, Categories: categories})
}
