package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"wrapped not found", fmt.Errorf("faculty 3: %w", ErrNotFound), http.StatusNotFound},
		{"bad request", ErrBadRequest, http.StatusBadRequest},
		{"invalid input", fmt.Errorf("age: %w", ErrInvalidInput), http.StatusBadRequest},
		{"pagination", NewPaginationError("pageSize can't be lower or equal 0"), http.StatusBadRequest},
		{"wrapped pagination", fmt.Errorf("list: %w", NewPaginationError("x")), http.StatusBadRequest},
		{"app error code", New(http.StatusRequestEntityTooLarge, "too big", nil), http.StatusRequestEntityTooLarge},
		{"locked", ErrLocked, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatus(tc.err))
		})
	}
}

func TestAppErrorMessage(t *testing.T) {
	assert.Equal(t, "too big", New(http.StatusBadRequest, "too big", nil).Error())

	inner := errors.New("inner")
	err := New(http.StatusBadRequest, "outer", inner)
	assert.Equal(t, "inner", err.Error())
	assert.ErrorIs(t, err, inner)
}
