package service

import (
	"errors"
	"strings"

	"menu-cms-svc/internal/models"
	"menu-cms-svc/internal/repository"
	"menu-cms-svc/pkg/logger"
	"menu-cms-svc/pkg/utils"
)

// CategoryInput is the submitted category form
type CategoryInput struct {
	MenuID string `form:"menu_id" json:"menu_id"`
	Slug   string `form:"slug" json:"slug"`
	NameRu string `form:"name_ru" json:"name_ru"`
	NameKz string `form:"name_kz" json:"name_kz"`
	NameEn string `form:"name_en" json:"name_en"`
}

func (in *CategoryInput) normalize() {
	in.MenuID = strings.TrimSpace(in.MenuID)
	in.Slug = strings.TrimSpace(in.Slug)
	in.NameRu = strings.TrimSpace(in.NameRu)
	in.NameKz = strings.TrimSpace(in.NameKz)
	in.NameEn = strings.TrimSpace(in.NameEn)
}

func (in *CategoryInput) complete() bool {
	return in.MenuID != "" && in.Slug != "" && in.NameRu != "" && in.NameKz != "" && in.NameEn != ""
}

// CategoryService interface defines category service methods
type CategoryService interface {
	ListCategories() ([]*models.Category, error)
	GetCategory(id uint) (*models.Category, error)
	CreateCategory(in *CategoryInput) (*models.Category, error)
	UpdateCategory(id uint, in *CategoryInput) (*models.Category, error)
	DeleteCategory(id uint) (bool, error)
}

// categoryService implements CategoryService interface
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *logger.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repository.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// ListCategories returns all categories ordered by id
func (s *categoryService) ListCategories() ([]*models.Category, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list categories")
		return nil, err
	}
	return categories, nil
}

// GetCategory returns a category by id
func (s *categoryService) GetCategory(id uint) (*models.Category, error) {
	return s.categoryRepo.GetByID(id)
}

// CreateCategory validates and inserts a new category. The parent menu is
// not looked up; a dangling menu id fails at the storage layer.
func (s *categoryService) CreateCategory(in *CategoryInput) (*models.Category, error) {
	in.normalize()
	if !in.complete() {
		return nil, invalid(msgRequiredFields)
	}

	if err := checkSlug(s.categorySlugOwner, in.Slug, 0, msgCategorySlugTaken); err != nil {
		return nil, err
	}

	menuID, err := utils.ParseID(in.MenuID)
	if err != nil {
		return nil, invalid(msgInvalidMenuID)
	}

	category := &models.Category{
		MenuID: menuID,
		Slug:   in.Slug,
		NameRu: in.NameRu,
		NameKz: in.NameKz,
		NameEn: in.NameEn,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, invalid(msgCategorySlugTaken)
		}
		s.logger.WithError(err).WithField("slug", in.Slug).Error("Failed to create category")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"id":      category.ID,
		"menu_id": category.MenuID,
		"slug":    category.Slug,
	}).Info("Category created successfully")

	return category, nil
}

// UpdateCategory validates and overwrites an existing category
func (s *categoryService) UpdateCategory(id uint, in *CategoryInput) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	in.normalize()
	if !in.complete() {
		return nil, invalid(msgRequiredFields)
	}

	if err := checkSlug(s.categorySlugOwner, in.Slug, category.ID, msgCategorySlugTakenOther); err != nil {
		return nil, err
	}

	menuID, err := utils.ParseID(in.MenuID)
	if err != nil {
		return nil, invalid(msgInvalidMenuID)
	}

	category.MenuID = menuID
	category.Slug = in.Slug
	category.NameRu = in.NameRu
	category.NameKz = in.NameKz
	category.NameEn = in.NameEn

	if err := s.categoryRepo.Update(category); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, invalid(msgCategorySlugTakenOther)
		}
		s.logger.WithError(err).WithField("id", id).Error("Failed to update category")
		return nil, err
	}

	s.logger.WithField("id", id).Info("Category updated successfully")

	return category, nil
}

// DeleteCategory removes a category with its dishes; a missing id is a no-op
func (s *categoryService) DeleteCategory(id uint) (bool, error) {
	if err := s.categoryRepo.Delete(id); err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		s.logger.WithError(err).WithField("id", id).Error("Failed to delete category")
		return false, err
	}

	s.logger.WithField("id", id).Info("Category deleted successfully")
	return true, nil
}

func (s *categoryService) categorySlugOwner(slug string) (uint, error) {
	category, err := s.categoryRepo.GetBySlug(slug)
	if err != nil {
		return 0, err
	}
	return category.ID, nil
}
