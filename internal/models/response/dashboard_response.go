package response

import "menu-cms-svc/internal/models"

// DashboardStatistics holds the entity counts shown on the admin dashboard
type DashboardStatistics struct {
	Menus      int64 `json:"menus" example:"3"`
	Categories int64 `json:"categories" example:"2"`
	Dishes     int64 `json:"dishes" example:"2"`
}

// DashboardResponse is the admin dashboard page data
type DashboardResponse struct {
	Stats    DashboardStatistics `json:"stats"`
	Settings *models.Settings    `json:"settings"`
}
