package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name *string `validate:"omitempty,max=3"`
	Age  int     `validate:"gte=0"`
}

func TestFormatValidationError(t *testing.T) {
	v := validator.New()
	long := "Gryffindor"

	err := v.Struct(sample{Name: &long, Age: -1})
	require.Error(t, err)

	msg := FormatValidationError(err)
	assert.Contains(t, msg, "name must be at most 3 characters")
	assert.Contains(t, msg, "age must be greater than or equal to 0")
}

func TestFormatValidationErrorPlain(t *testing.T) {
	assert.Equal(t, "boom", FormatValidationError(errors.New("boom")))
}
