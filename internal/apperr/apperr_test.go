package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("create product: %w", Conflict("sku %s already exists", "A-1"))

	assert.Equal(t, KindConflict, KindOf(err))
	assert.True(t, Is(err, KindConflict))
	assert.Equal(t, http.StatusConflict, HTTPStatus(err))
	assert.Equal(t, "sku A-1 already exists", PublicMessage(err))
}

func TestPlainErrorsAreInternal(t *testing.T) {
	err := errors.New("pq: connection refused")

	assert.Equal(t, KindInternal, KindOf(err))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(err))
	assert.Equal(t, "internal server error", PublicMessage(err))
	assert.False(t, Is(nil, KindInternal))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("driver failure")
	err := Wrap(KindInternal, cause, "list orders")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "list orders: driver failure", err.Error())
	assert.Equal(t, "internal server error", PublicMessage(err))
}

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(InvalidInput("limit must be >= 0")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("order %s not found", "x")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(Conflict("email taken")))
	assert.Equal(t, "not_found", KindNotFound.String())
}

func TestKindSetIsClosed(t *testing.T) {
	// Only client-facing kinds exist; an unknown value falls back to internal.
	unknown := KindConflict + 1
	assert.Equal(t, "internal", unknown.String())
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(New(unknown, "x")))
}
