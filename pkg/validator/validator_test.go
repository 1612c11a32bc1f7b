package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-web/pkg/validator"
)

type sample struct {
	Name  string `validate:"required"`
	Email string `validate:"omitempty,email"`
}

func TestValidate(t *testing.T) {
	v := validator.New()

	require.NoError(t, v.Validate(sample{Name: "Ana"}))

	err := v.Validate(sample{Name: "", Email: "no-es-email"})
	require.Error(t, err)
	assert.True(t, validator.IsValidationError(err), "fallo de campos debe reconocerse como error de validación")
}

// IsValidationError distingue fallos de campos de cualquier otro error.
func TestIsValidationError_OtrosErrores(t *testing.T) {
	assert.False(t, validator.IsValidationError(errors.New("conexión perdida")))
	assert.False(t, validator.IsValidationError(nil))
}
