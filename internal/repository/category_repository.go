package repository

import (
	"gorm.io/gorm"

	"menu-cms-svc/internal/models"
)

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	List() ([]*models.Category, error)
	GetByID(id uint) (*models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id uint) error
}

// categoryRepository implements CategoryRepository
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new instance of CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List() ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.Order("id ASC").Find(&categories).Error
	return categories, wrapErr("list categories", err)
}

func (r *categoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, wrapErr("get category", err)
	}
	return &category, nil
}

func (r *categoryRepository) GetBySlug(slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, wrapErr("get category by slug", err)
	}
	return &category, nil
}

func (r *categoryRepository) Create(category *models.Category) error {
	return wrapErr("create category", r.db.Omit("Dishes").Create(category).Error)
}

func (r *categoryRepository) Update(category *models.Category) error {
	return wrapErr("update category", r.db.Omit("Dishes").Save(category).Error)
}

// Delete removes a category and its dishes in one transaction
func (r *categoryRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.Dish{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Category{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	return wrapErr("delete category", err)
}
