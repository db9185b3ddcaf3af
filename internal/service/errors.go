package service

import (
	"errors"

	"menu-cms-svc/internal/repository"
)

// ValidationError is a user-facing rejection: nothing was written
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a *ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err means the requested row does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

// User-facing messages
const (
	msgRequiredFields     = "Заполните все поля"
	msgRequiredDishFields = "Заполните обязательные поля"

	msgMenuSlugTaken          = "Меню с таким slug уже существует"
	msgMenuSlugTakenOther     = "Другое меню с таким slug уже существует"
	msgCategorySlugTaken      = "Категория с таким slug уже существует"
	msgCategorySlugTakenOther = "Другая категория с таким slug уже существует"
	msgDishSlugTaken          = "Блюдо с таким slug уже существует"
	msgDishSlugTakenOther     = "Другое блюдо с таким slug уже существует"

	msgInvalidMenuID     = "Выберите меню"
	msgInvalidCategoryID = "Выберите категорию"
)
