package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	t.Run("WithoutCause", func(t *testing.T) {
		err := NewValidationError("email is required")
		assert.Equal(t, "VALIDATION_ERROR: email is required", err.Error())
	})

	t.Run("WithCause", func(t *testing.T) {
		cause := fmt.Errorf("connection refused")
		err := NewDatabaseError("failed to save rating", cause)
		assert.Equal(t, "DATABASE_ERROR: failed to save rating (caused by: connection refused)", err.Error())
	})
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewDatabaseError("failed to save rating", cause)

	assert.True(t, stderrors.Is(err, cause))
	assert.Nil(t, NewNotFoundError("missing").Unwrap())
}

func TestAppError_As(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewForbiddenError("verify email first"))

	var appErr *AppError
	assert.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, ForbiddenError, appErr.Type)
	assert.Equal(t, "verify email first", appErr.Message)
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
	}{
		{"Validation", NewValidationError("m"), ValidationError},
		{"NotFound", NewNotFoundError("m"), NotFoundError},
		{"AlreadyExists", NewAlreadyExistsError("m"), AlreadyExistsError},
		{"Forbidden", NewForbiddenError("m"), ForbiddenError},
		{"OTP", NewOTPError("m"), OTPError},
		{"Database", NewDatabaseError("m", nil), DatabaseError},
		{"Email", NewEmailError("m", nil), EmailError},
		{"Configuration", NewConfigurationError("m", nil), ConfigurationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, "m", tt.err.Message)
		})
	}
}
