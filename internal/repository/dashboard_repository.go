package repository

import (
	"menu-cms-svc/internal/models/response"

	"gorm.io/gorm"
)

// DashboardRepository defines the interface for cross-entity read queries
type DashboardRepository interface {
	GetStatistics() (*response.DashboardStatistics, error)
	ListImagePaths() ([]string, error)
}

// dashboardRepository implements DashboardRepository
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new instance of DashboardRepository
func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// GetStatistics counts menus, categories and dishes in a single round trip
func (r *dashboardRepository) GetStatistics() (*response.DashboardStatistics, error) {
	var result response.DashboardStatistics

	query := `
		SELECT
			(SELECT COUNT(*) FROM menus) AS menus,
			(SELECT COUNT(*) FROM categories) AS categories,
			(SELECT COUNT(*) FROM dishes) AS dishes
	`

	err := r.db.Raw(query).Scan(&result).Error
	if err != nil {
		return nil, wrapErr("dashboard statistics", err)
	}

	return &result, nil
}

// ListImagePaths returns every non-empty image path stored on menus and dishes
func (r *dashboardRepository) ListImagePaths() ([]string, error) {
	var paths []string

	query := `
		SELECT image FROM menus WHERE image IS NOT NULL AND image <> ''
		UNION
		SELECT image FROM dishes WHERE image IS NOT NULL AND image <> ''
	`

	err := r.db.Raw(query).Scan(&paths).Error
	if err != nil {
		return nil, wrapErr("list image paths", err)
	}

	return paths, nil
}
