package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	apperrors "storeapi.app/errors"
)

func TestEmailService_SendOTPEmail(t *testing.T) {
	t.Run("SendsHTMLWithCodeAndExpiry", func(t *testing.T) {
		provider := new(mockEmailProvider)
		svc := NewEmailService(provider)

		provider.On("SendEmail", "a@b.com", "Your verification code", mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, "123456") && strings.Contains(body, "5 minutes")
		}), true).Return(nil)

		err := svc.SendOTPEmail("a@b.com", "123456", 5*time.Minute)
		assert.NoError(t, err)
		provider.AssertExpectations(t)
	})

	t.Run("EmptyEmail", func(t *testing.T) {
		svc := NewEmailService(new(mockEmailProvider))

		err := svc.SendOTPEmail("", "123456", 5*time.Minute)

		var appErr *apperrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ValidationError, appErr.Type)
	})

	t.Run("EmptyCode", func(t *testing.T) {
		svc := NewEmailService(new(mockEmailProvider))

		err := svc.SendOTPEmail("a@b.com", "", 5*time.Minute)

		var appErr *apperrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ValidationError, appErr.Type)
	})

	t.Run("ProviderErrorPropagates", func(t *testing.T) {
		provider := new(mockEmailProvider)
		svc := NewEmailService(provider)
		provider.On("SendEmail", mock.Anything, mock.Anything, mock.Anything, true).
			Return(apperrors.NewEmailError("smtp unreachable", nil))

		err := svc.SendOTPEmail("a@b.com", "123456", 5*time.Minute)

		var appErr *apperrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.EmailError, appErr.Type)
	})
}
