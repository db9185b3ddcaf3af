package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no row matches the lookup
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateSlug is returned when the unique slug index rejects a write
	ErrDuplicateSlug = errors.New("slug already exists")
)

// StorageError wraps any other backend failure
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// wrapErr maps gorm errors onto the repository error taxonomy
func wrapErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, ErrDuplicateSlug)
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrDuplicateSlug):
		return err
	default:
		var se *StorageError
		if errors.As(err, &se) {
			return err
		}
		return &StorageError{Op: op, Err: err}
	}
}
