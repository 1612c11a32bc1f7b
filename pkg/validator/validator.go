package validator

import (
	"github.com/go-playground/validator/v10"
)

// Validator valida structs anotados con tags `validate`.
type Validator interface {
	Validate(s any) error
}

// DefaultValidator implementación sobre go-playground/validator.
type DefaultValidator struct {
	v *validator.Validate
}

// New crea el validador por defecto.
func New() *DefaultValidator {
	return &DefaultValidator{v: validator.New()}
}

// Validate valida el struct dado; devuelve validator.ValidationErrors si falla.
func (d *DefaultValidator) Validate(s any) error {
	return d.v.Struct(s)
}

// IsValidationError verifica si el error proviene de la validación de campos.
func IsValidationError(err error) bool {
	_, ok := err.(validator.ValidationErrors)
	return ok
}
