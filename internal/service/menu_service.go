package service

import (
	"errors"
	"mime/multipart"
	"strings"

	"menu-cms-svc/internal/models"
	"menu-cms-svc/internal/repository"
	"menu-cms-svc/pkg/logger"
)

// ImageStore persists uploaded images; an empty path means nothing was accepted
type ImageStore interface {
	SaveMultipart(fh *multipart.FileHeader) (string, error)
}

// MenuInput is the submitted menu form
type MenuInput struct {
	Slug    string                `form:"slug" json:"slug"`
	TitleRu string                `form:"title_ru" json:"title_ru"`
	TitleKz string                `form:"title_kz" json:"title_kz"`
	TitleEn string                `form:"title_en" json:"title_en"`
	Image   *multipart.FileHeader `form:"-" json:"-"`
}

func (in *MenuInput) normalize() {
	in.Slug = strings.TrimSpace(in.Slug)
	in.TitleRu = strings.TrimSpace(in.TitleRu)
	in.TitleKz = strings.TrimSpace(in.TitleKz)
	in.TitleEn = strings.TrimSpace(in.TitleEn)
}

func (in *MenuInput) complete() bool {
	return in.Slug != "" && in.TitleRu != "" && in.TitleKz != "" && in.TitleEn != ""
}

// MenuService interface defines menu service methods
type MenuService interface {
	ListMenus() ([]*models.Menu, error)
	GetMenu(id uint) (*models.Menu, error)
	CreateMenu(in *MenuInput) (*models.Menu, error)
	UpdateMenu(id uint, in *MenuInput) (*models.Menu, error)
	DeleteMenu(id uint) (bool, error)
}

// menuService implements MenuService interface
type menuService struct {
	menuRepo repository.MenuRepository
	images   ImageStore
	logger   *logger.Logger
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo repository.MenuRepository, images ImageStore, logger *logger.Logger) MenuService {
	return &menuService{
		menuRepo: menuRepo,
		images:   images,
		logger:   logger,
	}
}

// ListMenus returns all menus ordered by id
func (s *menuService) ListMenus() ([]*models.Menu, error) {
	menus, err := s.menuRepo.List()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list menus")
		return nil, err
	}
	return menus, nil
}

// GetMenu returns a menu by id
func (s *menuService) GetMenu(id uint) (*models.Menu, error) {
	return s.menuRepo.GetByID(id)
}

// CreateMenu validates and inserts a new menu
func (s *menuService) CreateMenu(in *MenuInput) (*models.Menu, error) {
	in.normalize()
	if !in.complete() {
		return nil, invalid(msgRequiredFields)
	}

	if err := checkSlug(s.menuSlugOwner, in.Slug, 0, msgMenuSlugTaken); err != nil {
		return nil, err
	}

	image, err := s.images.SaveMultipart(in.Image)
	if err != nil {
		s.logger.WithError(err).WithField("slug", in.Slug).Error("Failed to store menu image")
		return nil, err
	}

	menu := &models.Menu{
		Slug:    in.Slug,
		TitleRu: in.TitleRu,
		TitleKz: in.TitleKz,
		TitleEn: in.TitleEn,
		Image:   models.StringPtr(image),
	}
	if err := s.menuRepo.Create(menu); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, invalid(msgMenuSlugTaken)
		}
		s.logger.WithError(err).WithField("slug", in.Slug).Error("Failed to create menu")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"id":   menu.ID,
		"slug": menu.Slug,
	}).Info("Menu created successfully")

	return menu, nil
}

// UpdateMenu validates and overwrites an existing menu. The stored image is
// replaced only when a new one was accepted.
func (s *menuService) UpdateMenu(id uint, in *MenuInput) (*models.Menu, error) {
	menu, err := s.menuRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	in.normalize()
	if !in.complete() {
		return nil, invalid(msgRequiredFields)
	}

	if err := checkSlug(s.menuSlugOwner, in.Slug, menu.ID, msgMenuSlugTakenOther); err != nil {
		return nil, err
	}

	image, err := s.images.SaveMultipart(in.Image)
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Failed to store menu image")
		return nil, err
	}

	menu.Slug = in.Slug
	menu.TitleRu = in.TitleRu
	menu.TitleKz = in.TitleKz
	menu.TitleEn = in.TitleEn
	if image != "" {
		menu.Image = models.StringPtr(image)
	}

	if err := s.menuRepo.Update(menu); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, invalid(msgMenuSlugTakenOther)
		}
		s.logger.WithError(err).WithField("id", id).Error("Failed to update menu")
		return nil, err
	}

	s.logger.WithField("id", id).Info("Menu updated successfully")

	return menu, nil
}

// DeleteMenu removes a menu with its categories and dishes. Deleting a
// missing menu is not an error; the bool reports whether anything was removed.
func (s *menuService) DeleteMenu(id uint) (bool, error) {
	if err := s.menuRepo.Delete(id); err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		s.logger.WithError(err).WithField("id", id).Error("Failed to delete menu")
		return false, err
	}

	s.logger.WithField("id", id).Info("Menu deleted successfully")
	return true, nil
}

func (s *menuService) menuSlugOwner(slug string) (uint, error) {
	menu, err := s.menuRepo.GetBySlug(slug)
	if err != nil {
		return 0, err
	}
	return menu.ID, nil
}

// checkSlug rejects slug when another row (any row on create, selfID == 0)
// already holds it
func checkSlug(owner func(string) (uint, error), slug string, selfID uint, message string) error {
	ownerID, err := owner(slug)
	if err != nil {
		if IsNotFound(err) {
			return nil
		}
		return err
	}
	if ownerID != selfID {
		return invalid(message)
	}
	return nil
}
