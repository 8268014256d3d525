package service

import (
	"context"
	"crypto/rand"
	"log"
	"math/big"
	"strings"
	"time"

	"storeapi.app/config"
	"storeapi.app/errors"
	"storeapi.app/models"
)

// OTPService handles issuance and verification of one-time codes.
//
// State machine per email: NoOtp -> Issued -> Verified | Expired. Issuance
// upserts the single row for the email, so the stored row is always the
// current code. Verification of a matching, unexpired code is repeatable
// within the validity window; rating submission is the consuming gate.
type OTPService struct {
	otpRepo      OTPRepositoryInterface
	ratingRepo   RatingRepositoryInterface
	emailService EmailServiceInterface
	expiry       time.Duration
}

// NewOTPService creates a new OTP service
func NewOTPService(
	otpRepo OTPRepositoryInterface,
	ratingRepo RatingRepositoryInterface,
	emailService EmailServiceInterface,
	cfg *config.OTPConfig,
) *OTPService {
	return &OTPService{
		otpRepo:      otpRepo,
		ratingRepo:   ratingRepo,
		emailService: emailService,
		expiry:       time.Duration(cfg.ExpiryMinutes) * time.Minute,
	}
}

// generateCode returns a uniformly random 6-digit code in [100000, 999999]
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return big.NewInt(0).Add(n, big.NewInt(100000)).String(), nil
}

// SendOTP issues a code for the email and dispatches it by mail. Issuance is
// refused outright when the email already has a finalized rating. A mail
// failure fails the request; the stored code is not rolled back, which leaves
// a valid-but-unsent code until the next issuance overwrites it.
func (s *OTPService) SendOTP(ctx context.Context, email string) error {
	log.Printf("[DEBUG] OTPService.SendOTP called for: %s\n", email)

	if email == "" {
		return errors.NewValidationError("email is required")
	}

	alreadyRated, err := s.ratingRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return errors.NewDatabaseError("failed to check existing ratings", err)
	}
	if alreadyRated {
		return errors.NewAlreadyExistsError("you have already submitted a rating")
	}

	code, err := generateCode()
	if err != nil {
		return errors.NewOTPError("failed to generate verification code")
	}

	now := time.Now()
	otp := &models.OTPVerification{
		Email:     email,
		OTP:       code,
		CreatedAt: now,
		ExpiresAt: now.Add(s.expiry),
		Used:      false,
	}
	if err := s.otpRepo.Upsert(ctx, otp); err != nil {
		return errors.NewDatabaseError("failed to store verification code", err)
	}

	return s.emailService.SendOTPEmail(email, code, s.expiry)
}

// VerifyOTP checks a submitted code against the current code for the email
// and marks it used on success
func (s *OTPService) VerifyOTP(ctx context.Context, email, code string) error {
	log.Printf("[DEBUG] OTPService.VerifyOTP called for: %s\n", email)

	if email == "" {
		return errors.NewValidationError("email is required")
	}
	if code == "" {
		return errors.NewValidationError("otp is required")
	}

	otp, err := s.otpRepo.FindByEmail(ctx, email)
	if err != nil {
		return errors.NewDatabaseError("failed to look up verification code", err)
	}
	if otp == nil {
		return errors.NewNotFoundError("no verification code found for this email")
	}

	// Compare as strings, never as coerced numbers
	if strings.TrimSpace(code) != otp.OTP {
		return errors.NewOTPError("invalid verification code")
	}

	if otp.IsExpired(time.Now()) {
		return errors.NewOTPError("verification code has expired")
	}

	if !otp.Used {
		if err := s.otpRepo.MarkUsed(ctx, otp); err != nil {
			return errors.NewDatabaseError("failed to mark verification code used", err)
		}
	}

	log.Printf("[DEBUG] OTP verified for: %s\n", email)
	return nil
}
