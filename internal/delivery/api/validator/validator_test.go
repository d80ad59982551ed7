package validator

import (
	"strings"
	"testing"

	"horus/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_CreateUserInput(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&usecase.CreateUserInput{
		FirstName: "Ana",
		Email:     "ana@x.com",
		Document:  "12345678901",
	}))

	err := v.Validate(&usecase.CreateUserInput{Email: "not-an-email", Document: "123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first_name: is required")
	assert.Contains(t, err.Error(), "email: must be a valid email address")
	assert.Contains(t, err.Error(), "document: must be at least 11 characters")
}

func TestValidator_CreateUserInput_LongValues(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&usecase.CreateUserInput{
		FirstName: strings.Repeat("a", 150),
		Email:     "ana@x.com",
		Document:  strings.Repeat("9", 40),
	}))
}

func TestValidator_AuthenticateInput(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.AuthenticateInput{Email: "ana@x.com"})
	require.Error(t, err)
	assert.Equal(t, "password: is required", err.Error())
}
