package repository

import (
	"gorm.io/gorm"

	"menu-cms-svc/internal/models"
)

// DishRepository defines the interface for dish data operations
type DishRepository interface {
	List() ([]*models.Dish, error)
	ListNewestFirst() ([]*models.Dish, error)
	GetByID(id uint) (*models.Dish, error)
	GetBySlug(slug string) (*models.Dish, error)
	Create(dish *models.Dish) error
	Update(dish *models.Dish) error
	Delete(id uint) error
}

// dishRepository implements DishRepository
type dishRepository struct {
	db *gorm.DB
}

// NewDishRepository creates a new instance of DishRepository
func NewDishRepository(db *gorm.DB) DishRepository {
	return &dishRepository{db: db}
}

// List returns all dishes ordered by id, as the public page shows them
func (r *dishRepository) List() ([]*models.Dish, error) {
	var dishes []*models.Dish
	err := r.db.Order("id ASC").Find(&dishes).Error
	return dishes, wrapErr("list dishes", err)
}

// ListNewestFirst returns all dishes ordered by id descending, for the admin list
func (r *dishRepository) ListNewestFirst() ([]*models.Dish, error) {
	var dishes []*models.Dish
	err := r.db.Order("id DESC").Find(&dishes).Error
	return dishes, wrapErr("list dishes", err)
}

func (r *dishRepository) GetByID(id uint) (*models.Dish, error) {
	var dish models.Dish
	if err := r.db.First(&dish, id).Error; err != nil {
		return nil, wrapErr("get dish", err)
	}
	return &dish, nil
}

func (r *dishRepository) GetBySlug(slug string) (*models.Dish, error) {
	var dish models.Dish
	if err := r.db.Where("slug = ?", slug).First(&dish).Error; err != nil {
		return nil, wrapErr("get dish by slug", err)
	}
	return &dish, nil
}

func (r *dishRepository) Create(dish *models.Dish) error {
	return wrapErr("create dish", r.db.Create(dish).Error)
}

func (r *dishRepository) Update(dish *models.Dish) error {
	return wrapErr("update dish", r.db.Save(dish).Error)
}

func (r *dishRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Dish{}, id)
	if res.Error != nil {
		return wrapErr("delete dish", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrapErr("delete dish", ErrNotFound)
	}
	return nil
}
