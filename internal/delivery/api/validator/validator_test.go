package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"required"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	err := New().Validate(&loginRequest{Email: "not-an-email"})

	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	require.Len(t, validationErrs, 2)
	assert.Equal(t, "email", validationErrs[0].Field())
	assert.Equal(t, "password", validationErrs[1].Field())
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, New().Validate(&loginRequest{Email: "jane@example.com", Password: "secret"}))
}
