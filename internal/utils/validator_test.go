package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"display_name" validate:"required,max=10"`
}

func TestValidator_Validate(t *testing.T) {
	v := NewValidator()

	t.Run("valid struct", func(t *testing.T) {
		err := v.Validate(&sampleRequest{Email: "ana@example.com", Name: "Ana"})
		assert.NoError(t, err)
	})

	t.Run("reports json field names", func(t *testing.T) {
		err := v.Validate(&sampleRequest{Email: "nope", Name: ""})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "display_name")
	})
}
