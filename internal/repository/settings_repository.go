package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"menu-cms-svc/internal/models"
)

// SettingsRepository defines the interface for the singleton settings row
type SettingsRepository interface {
	First() (*models.Settings, error)
	CreateIfAbsent(settings *models.Settings) error
	Save(settings *models.Settings) error
}

// settingsRepository implements SettingsRepository
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new instance of SettingsRepository
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// First returns the lowest-id settings row
func (r *settingsRepository) First() (*models.Settings, error) {
	var settings models.Settings
	if err := r.db.Order("id ASC").First(&settings).Error; err != nil {
		return nil, wrapErr("get settings", err)
	}
	return &settings, nil
}

// CreateIfAbsent inserts the row unless one with the same primary key exists.
// Concurrent first requests therefore converge on a single row.
func (r *settingsRepository) CreateIfAbsent(settings *models.Settings) error {
	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(settings).Error
	return wrapErr("create settings", err)
}

// Save writes every column of the settings row
func (r *settingsRepository) Save(settings *models.Settings) error {
	return wrapErr("save settings", r.db.Save(settings).Error)
}
