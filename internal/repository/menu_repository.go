package repository

import (
	"gorm.io/gorm"

	"menu-cms-svc/internal/models"
)

// MenuRepository interface defines menu repository methods
type MenuRepository interface {
	List() ([]*models.Menu, error)
	GetByID(id uint) (*models.Menu, error)
	GetBySlug(slug string) (*models.Menu, error)
	Create(menu *models.Menu) error
	Update(menu *models.Menu) error
	Delete(id uint) error
}

// menuRepository implements MenuRepository interface
type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

// List returns all menus ordered by id
func (r *menuRepository) List() ([]*models.Menu, error) {
	var menus []*models.Menu
	err := r.db.Order("id ASC").Find(&menus).Error
	return menus, wrapErr("list menus", err)
}

// GetByID gets a menu by id
func (r *menuRepository) GetByID(id uint) (*models.Menu, error) {
	var menu models.Menu
	if err := r.db.First(&menu, id).Error; err != nil {
		return nil, wrapErr("get menu", err)
	}
	return &menu, nil
}

// GetBySlug gets a menu by its unique slug
func (r *menuRepository) GetBySlug(slug string) (*models.Menu, error) {
	var menu models.Menu
	if err := r.db.Where("slug = ?", slug).First(&menu).Error; err != nil {
		return nil, wrapErr("get menu by slug", err)
	}
	return &menu, nil
}

// Create inserts a new menu
func (r *menuRepository) Create(menu *models.Menu) error {
	return wrapErr("create menu", r.db.Omit("Categories").Create(menu).Error)
}

// Update writes every column of an existing menu
func (r *menuRepository) Update(menu *models.Menu) error {
	return wrapErr("update menu", r.db.Omit("Categories").Save(menu).Error)
}

// Delete removes a menu together with its categories and their dishes
func (r *menuRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		categoryIDs := tx.Model(&models.Category{}).Select("id").Where("menu_id = ?", id)
		if err := tx.Where("category_id IN (?)", categoryIDs).Delete(&models.Dish{}).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_id = ?", id).Delete(&models.Category{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Menu{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	return wrapErr("delete menu", err)
}
