package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestToDomainError_PassesThrough(t *testing.T) {
	orig := NewForbidden("insufficient role")
	mapped := ToDomainError(orig)
	assert.Equal(t, "FORBIDDEN", mapped.Code)
	assert.Equal(t, http.StatusForbidden, mapped.HTTPStatus)
}

func TestToDomainError_NoRowsBecomesNotFound(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainError_UnknownBecomesInternal(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	// the wrapped cause stays available for logging but not for the response body
	assert.Equal(t, "internal server error", mapped.Message)
	assert.EqualError(t, mapped.Err, "boom")
}

func TestNewInvalidResetToken_UniformMessage(t *testing.T) {
	first := ToDomainError(NewInvalidResetToken())
	second := ToDomainError(NewInvalidResetToken())
	assert.Equal(t, first.Message, second.Message)
	assert.Equal(t, http.StatusBadRequest, first.HTTPStatus)
}
