package errors

import (
	"net/http"
	"testing"

	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	detailed := ErrVerificationExpired.WithDetails("token expired at 2026-01-01")

	assert.True(t, errors.Is(detailed, ErrVerificationExpired))
	assert.False(t, errors.Is(detailed, ErrVerificationNotFound))
	assert.Equal(t, "token expired at 2026-01-01", detailed.Details())
	assert.Equal(t, http.StatusGone, detailed.HTTPCode())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrCartEmpty.WrapMessage("cart 42 has no items")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "CART_EMPTY", appErr.ErrorCode())
	assert.True(t, errors.Is(wrapped, ErrCartEmpty))
}

func TestDatabaseExecuteError_Unwraps(t *testing.T) {
	cause := errors.New("connection reset")
	dbErr := NewDatabaseExecuteError(cause, "failed to create order")

	assert.True(t, errors.Is(dbErr, cause))
	assert.Equal(t, http.StatusInternalServerError, dbErr.HTTPCode())
	assert.Equal(t, "failed to create order", dbErr.Details())
	assert.Contains(t, dbErr.Error(), "connection reset")
}
