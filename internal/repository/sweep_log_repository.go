package repository

import (
	"gorm.io/gorm"

	"menu-cms-svc/internal/models"
)

// SweepLogRepository stores the history of scheduled upload sweeps
type SweepLogRepository interface {
	Create(entry *models.SweepLog) error
	ListByRun(runID string) ([]*models.SweepLog, error)
}

// sweepLogRepository implements SweepLogRepository
type sweepLogRepository struct {
	db *gorm.DB
}

// NewSweepLogRepository creates a new instance of SweepLogRepository
func NewSweepLogRepository(db *gorm.DB) SweepLogRepository {
	return &sweepLogRepository{
		db: db,
	}
}

// Create appends a log entry
func (r *sweepLogRepository) Create(entry *models.SweepLog) error {
	return wrapErr("create sweep log", r.db.Create(entry).Error)
}

// ListByRun returns the entries of one run in insertion order
func (r *sweepLogRepository) ListByRun(runID string) ([]*models.SweepLog, error) {
	var entries []*models.SweepLog
	err := r.db.Where("run_id = ?", runID).Order("id ASC").Find(&entries).Error
	return entries, wrapErr("list sweep logs", err)
}
