package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestError_Is(t *testing.T) {
	errBadInput := NewError(http.StatusBadRequest, "bad input")

	wrapped := fmt.Errorf("handler: %w", errBadInput)

	assert.Equal(t, true, errors.Is(wrapped, errBadInput))
	assert.Equal(t, true, errors.Is(NewError(http.StatusBadRequest, "bad input"), errBadInput))
	assert.Equal(t, false, errors.Is(NewError(http.StatusInternalServerError, "bad input"), errBadInput))
	assert.Equal(t, false, errors.Is(errors.New("bad input"), errBadInput))
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOK   bool
	}{
		{
			name:     "response error",
			err:      NewError(http.StatusBadRequest, "invalid"),
			wantCode: http.StatusBadRequest,
			wantOK:   true,
		},
		{
			name:     "wrapped response error",
			err:      fmt.Errorf("ctx: %w", NewError(http.StatusNotFound, "missing")),
			wantCode: http.StatusNotFound,
			wantOK:   true,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := StatusOf(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
