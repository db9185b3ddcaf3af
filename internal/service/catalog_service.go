package service

import (
	"menu-cms-svc/internal/models"
	"menu-cms-svc/internal/models/response"
	"menu-cms-svc/internal/repository"
	"menu-cms-svc/pkg/logger"
)

// CatalogService assembles the read-only public menu
type CatalogService interface {
	PublicMenu(lang string) (*response.PublicMenuResponse, error)
}

// catalogService implements CatalogService interface
type catalogService struct {
	menuRepo     repository.MenuRepository
	categoryRepo repository.CategoryRepository
	dishRepo     repository.DishRepository
	settings     SettingsService
	logger       *logger.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	menuRepo repository.MenuRepository,
	categoryRepo repository.CategoryRepository,
	dishRepo repository.DishRepository,
	settings SettingsService,
	logger *logger.Logger,
) CatalogService {
	return &catalogService{
		menuRepo:     menuRepo,
		categoryRepo: categoryRepo,
		dishRepo:     dishRepo,
		settings:     settings,
		logger:       logger,
	}
}

// PublicMenu loads every menu, category and dish (id ascending) and flattens
// them into plain records. Absent images and ingredients become "".
func (s *catalogService) PublicMenu(lang string) (*response.PublicMenuResponse, error) {
	menus, err := s.menuRepo.List()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load menus for public page")
		return nil, err
	}
	categories, err := s.categoryRepo.List()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load categories for public page")
		return nil, err
	}
	dishes, err := s.dishRepo.List()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load dishes for public page")
		return nil, err
	}
	settings, err := s.settings.GetSettings()
	if err != nil {
		return nil, err
	}

	view := &response.PublicMenuResponse{
		Menus:      make([]response.PublicMenu, 0, len(menus)),
		Categories: make([]response.PublicCategory, 0, len(categories)),
		Items:      make([]response.PublicDish, 0, len(dishes)),
		Phone:      models.StringValue(settings.Phone),
		Theme:      settings,
		Lang:       lang,
	}
	for _, m := range menus {
		view.Menus = append(view.Menus, response.PublicMenu{
			ID:      m.ID,
			Slug:    m.Slug,
			TitleRu: m.TitleRu,
			TitleKz: m.TitleKz,
			TitleEn: m.TitleEn,
			Image:   models.StringValue(m.Image),
		})
	}
	for _, c := range categories {
		view.Categories = append(view.Categories, response.PublicCategory{
			ID:     c.ID,
			MenuID: c.MenuID,
			Slug:   c.Slug,
			NameRu: c.NameRu,
			NameKz: c.NameKz,
			NameEn: c.NameEn,
		})
	}
	for _, d := range dishes {
		view.Items = append(view.Items, response.PublicDish{
			ID:         d.ID,
			CategoryID: d.CategoryID,
			Slug:       d.Slug,
			TitleRu:    d.TitleRu,
			TitleKz:    d.TitleKz,
			TitleEn:    d.TitleEn,
			Price:      d.Price,
			IngRu:      models.StringValue(d.IngRu),
			IngKz:      models.StringValue(d.IngKz),
			IngEn:      models.StringValue(d.IngEn),
			Image:      models.StringValue(d.Image),
		})
	}

	return view, nil
}
