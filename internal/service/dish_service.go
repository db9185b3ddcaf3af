package service

import (
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"menu-cms-svc/internal/models"
	"menu-cms-svc/internal/repository"
	"menu-cms-svc/pkg/logger"
	"menu-cms-svc/pkg/utils"
)

// DishInput is the submitted dish form
type DishInput struct {
	CategoryID string                `form:"category_id" json:"category_id"`
	Slug       string                `form:"slug" json:"slug"`
	TitleRu    string                `form:"title_ru" json:"title_ru"`
	TitleKz    string                `form:"title_kz" json:"title_kz"`
	TitleEn    string                `form:"title_en" json:"title_en"`
	Price      string                `form:"price" json:"price"`
	IngRu      string                `form:"ing_ru" json:"ing_ru"`
	IngKz      string                `form:"ing_kz" json:"ing_kz"`
	IngEn      string                `form:"ing_en" json:"ing_en"`
	Image      *multipart.FileHeader `form:"-" json:"-"`
}

func (in *DishInput) normalize() {
	for _, f := range []*string{
		&in.CategoryID, &in.Slug,
		&in.TitleRu, &in.TitleKz, &in.TitleEn,
		&in.Price,
		&in.IngRu, &in.IngKz, &in.IngEn,
	} {
		*f = strings.TrimSpace(*f)
	}
}

func (in *DishInput) complete() bool {
	return in.CategoryID != "" && in.Slug != "" && in.TitleRu != "" && in.TitleKz != "" && in.TitleEn != ""
}

// ParsePrice converts the submitted price to minor units. Anything that is
// not a non-negative integer becomes 0 instead of rejecting the form.
func ParsePrice(raw string) int {
	price, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || price < 0 {
		return 0
	}
	return price
}

// DishService interface defines dish service methods
type DishService interface {
	ListDishes() ([]*models.Dish, error)
	GetDish(id uint) (*models.Dish, error)
	CreateDish(in *DishInput) (*models.Dish, error)
	UpdateDish(id uint, in *DishInput) (*models.Dish, error)
	DeleteDish(id uint) (bool, error)
}

// dishService implements DishService interface
type dishService struct {
	dishRepo repository.DishRepository
	images   ImageStore
	logger   *logger.Logger
}

// NewDishService creates a new dish service
func NewDishService(dishRepo repository.DishRepository, images ImageStore, logger *logger.Logger) DishService {
	return &dishService{
		dishRepo: dishRepo,
		images:   images,
		logger:   logger,
	}
}

// ListDishes returns all dishes, newest first
func (s *dishService) ListDishes() ([]*models.Dish, error) {
	dishes, err := s.dishRepo.ListNewestFirst()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list dishes")
		return nil, err
	}
	return dishes, nil
}

// GetDish returns a dish by id
func (s *dishService) GetDish(id uint) (*models.Dish, error) {
	return s.dishRepo.GetByID(id)
}

// CreateDish validates and inserts a new dish
func (s *dishService) CreateDish(in *DishInput) (*models.Dish, error) {
	in.normalize()
	if !in.complete() {
		return nil, invalid(msgRequiredDishFields)
	}

	if err := checkSlug(s.dishSlugOwner, in.Slug, 0, msgDishSlugTaken); err != nil {
		return nil, err
	}

	categoryID, err := utils.ParseID(in.CategoryID)
	if err != nil {
		return nil, invalid(msgInvalidCategoryID)
	}

	image, err := s.images.SaveMultipart(in.Image)
	if err != nil {
		s.logger.WithError(err).WithField("slug", in.Slug).Error("Failed to store dish image")
		return nil, err
	}

	dish := &models.Dish{
		CategoryID: categoryID,
		Slug:       in.Slug,
		TitleRu:    in.TitleRu,
		TitleKz:    in.TitleKz,
		TitleEn:    in.TitleEn,
		Price:      ParsePrice(in.Price),
		IngRu:      models.StringPtr(in.IngRu),
		IngKz:      models.StringPtr(in.IngKz),
		IngEn:      models.StringPtr(in.IngEn),
		Image:      models.StringPtr(image),
	}
	if err := s.dishRepo.Create(dish); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, invalid(msgDishSlugTaken)
		}
		s.logger.WithError(err).WithField("slug", in.Slug).Error("Failed to create dish")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"id":          dish.ID,
		"category_id": dish.CategoryID,
		"slug":        dish.Slug,
		"price":       dish.Price,
	}).Info("Dish created successfully")

	return dish, nil
}

// UpdateDish validates and overwrites an existing dish
func (s *dishService) UpdateDish(id uint, in *DishInput) (*models.Dish, error) {
	dish, err := s.dishRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	in.normalize()
	if !in.complete() {
		return nil, invalid(msgRequiredDishFields)
	}

	if err := checkSlug(s.dishSlugOwner, in.Slug, dish.ID, msgDishSlugTakenOther); err != nil {
		return nil, err
	}

	categoryID, err := utils.ParseID(in.CategoryID)
	if err != nil {
		return nil, invalid(msgInvalidCategoryID)
	}

	image, err := s.images.SaveMultipart(in.Image)
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Failed to store dish image")
		return nil, err
	}

	dish.CategoryID = categoryID
	dish.Slug = in.Slug
	dish.TitleRu = in.TitleRu
	dish.TitleKz = in.TitleKz
	dish.TitleEn = in.TitleEn
	dish.Price = ParsePrice(in.Price)
	dish.IngRu = models.StringPtr(in.IngRu)
	dish.IngKz = models.StringPtr(in.IngKz)
	dish.IngEn = models.StringPtr(in.IngEn)
	if image != "" {
		dish.Image = models.StringPtr(image)
	}

	if err := s.dishRepo.Update(dish); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, invalid(msgDishSlugTakenOther)
		}
		s.logger.WithError(err).WithField("id", id).Error("Failed to update dish")
		return nil, err
	}

	s.logger.WithField("id", id).Info("Dish updated successfully")

	return dish, nil
}

// DeleteDish removes a dish; a missing id is a no-op
func (s *dishService) DeleteDish(id uint) (bool, error) {
	if err := s.dishRepo.Delete(id); err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		s.logger.WithError(err).WithField("id", id).Error("Failed to delete dish")
		return false, err
	}

	s.logger.WithField("id", id).Info("Dish deleted successfully")
	return true, nil
}

func (s *dishService) dishSlugOwner(slug string) (uint, error) {
	dish, err := s.dishRepo.GetBySlug(slug)
	if err != nil {
		return 0, err
	}
	return dish.ID, nil
}
