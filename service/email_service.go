package service

import (
	"fmt"
	"log"
	"time"

	"storeapi.app/errors"
	"storeapi.app/providers"
)

// EmailService handles email operations using a provider
type EmailService struct {
	provider providers.EmailProvider
}

// NewEmailService creates a new email service with the specified provider
func NewEmailService(provider providers.EmailProvider) *EmailService {
	return &EmailService{
		provider: provider,
	}
}

// SendOTPEmail sends the plaintext verification code to the address
func (s *EmailService) SendOTPEmail(email, code string, expiresIn time.Duration) error {
	log.Printf("[DEBUG] SendOTPEmail called for: %s\n", email)

	if email == "" {
		return errors.NewValidationError("email cannot be empty")
	}
	if code == "" {
		return errors.NewValidationError("verification code cannot be empty")
	}

	subject := "Your verification code"
	htmlContent := fmt.Sprintf(
		"<p>Your verification code is:</p>"+
			"<h2>%s</h2>"+
			"<p>This code will expire in %d minutes.</p>"+
			"<p>If you did not request this code, you can ignore this email.</p>",
		code, int(expiresIn.Minutes()),
	)

	return s.provider.SendEmail(email, subject, htmlContent, true)
}
