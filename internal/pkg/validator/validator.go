// Package validator - общий валидатор входных DTO сервиса рекомендаций.
package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// Validate - валидация структуры запроса
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - получить валидатор для регистрации кастомных правил
func GetValidator() *validator.Validate {
	return validate
}
