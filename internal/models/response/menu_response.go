package response

import "menu-cms-svc/internal/models"

// MenuListResponse is the admin menus page: list plus create form
type MenuListResponse struct {
	Menus []*models.Menu `json:"menus"`
	// Form echoes the rejected create submission, nil otherwise
	Form interface{} `json:"form,omitempty"`
}

// MenuEditResponse is the admin menu edit page
type MenuEditResponse struct {
	Menu *models.Menu `json:"menu"`
}

// CategoryListResponse is the admin categories page
type CategoryListResponse struct {
	Categories []*models.Category `json:"cats"`
	Menus      []*models.Menu     `json:"menus"`
	Form       interface{}        `json:"form,omitempty"`
}

// CategoryEditResponse is the admin category edit page
type CategoryEditResponse struct {
	Category *models.Category `json:"cat"`
	Menus    []*models.Menu   `json:"menus"`
}

// DishListResponse is the admin dishes page, newest dish first
type DishListResponse struct {
	Dishes     []*models.Dish     `json:"dishes"`
	Categories []*models.Category `json:"cats"`
	Form       interface{}        `json:"form,omitempty"`
}

// DishEditResponse is the admin dish edit page
type DishEditResponse struct {
	Dish       *models.Dish       `json:"dish"`
	Categories []*models.Category `json:"cats"`
}
