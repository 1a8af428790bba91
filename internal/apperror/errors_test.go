package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("Title is required"), http.StatusBadRequest},
		{"not found", NotFound("Tip not found"), http.StatusNotFound},
		{"conflict", Conflict(errors.New("duplicate key")), http.StatusConflict},
		{"reference", Reference(errors.New("fk")), http.StatusBadRequest},
		{"unauthorized", Unauthorized("Authentication required"), http.StatusUnauthorized},
		{"unavailable", Unavailable("Alerts are disabled"), http.StatusServiceUnavailable},
		{"wrapped", fmt.Errorf("get tip: %w", NotFound("Tip not found")), http.StatusNotFound},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Status(c.err))
		})
	}
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "Resource already exists", PublicMessage(Conflict(errors.New("pq: duplicate key"))))
	assert.Equal(t, "Tip not found", PublicMessage(fmt.Errorf("wrap: %w", NotFound("Tip not found"))))
	assert.Equal(t, "Internal server error", PublicMessage(errors.New("boom")))
}

func TestErrorIsKind(t *testing.T) {
	err := Conflict(errors.New("cause"))
	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "Resource already exists: cause", err.Error())
}
