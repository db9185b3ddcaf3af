package service

import (
	"menu-cms-svc/internal/models/response"
	"menu-cms-svc/internal/repository"
	"menu-cms-svc/pkg/logger"
)

// DashboardService interface defines dashboard service methods
type DashboardService interface {
	GetDashboard() (*response.DashboardResponse, error)
	ReferencedImages() ([]string, error)
}

// dashboardService implements DashboardService interface
type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	settings      SettingsService
	logger        *logger.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(dashboardRepo repository.DashboardRepository, settings SettingsService, logger *logger.Logger) DashboardService {
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		settings:      settings,
		logger:        logger,
	}
}

// GetDashboard returns entity counts together with the current settings
func (s *dashboardService) GetDashboard() (*response.DashboardResponse, error) {
	statistics, err := s.dashboardRepo.GetStatistics()
	if err != nil {
		s.logger.WithError(err).Error("Failed to get dashboard statistics")
		return nil, err
	}

	settings, err := s.settings.GetSettings()
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"menus":      statistics.Menus,
		"categories": statistics.Categories,
		"dishes":     statistics.Dishes,
	}).Debug("Dashboard statistics retrieved successfully")

	return &response.DashboardResponse{
		Stats:    *statistics,
		Settings: settings,
	}, nil
}

// ReferencedImages lists the public paths of every image still attached to a menu or dish
func (s *dashboardService) ReferencedImages() ([]string, error) {
	paths, err := s.dashboardRepo.ListImagePaths()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list referenced images")
		return nil, err
	}
	return paths, nil
}
