package models

import (
	"time"
)

// Sweep run statuses
const (
	SweepStatusStart   = "START"
	SweepStatusSuccess = "SUCCESS"
	SweepStatusFailed  = "FAILED"
)

// SweepLog records one status change of a scheduled upload sweep
type SweepLog struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	RunID     string    `json:"run_id" gorm:"column:run_id;size:36;not null;index"`
	Status    string    `json:"status" gorm:"column:status;size:16;not null"`
	Removed   int       `json:"removed" gorm:"column:removed;not null;default:0"`
	Message   *string   `json:"message" gorm:"column:message;type:text"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the insert table name for SweepLog
func (SweepLog) TableName() string {
	return "sweep_logs"
}
