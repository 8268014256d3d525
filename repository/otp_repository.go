package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"storeapi.app/models"
)

// OTPRepository handles data access operations for one-time codes
type OTPRepository struct {
	db *gorm.DB
}

// NewOTPRepository creates a new repository for OTP operations
func NewOTPRepository(db *gorm.DB) *OTPRepository {
	return &OTPRepository{db: db}
}

// Upsert stores a code for an email, overwriting any previous row for that
// address. Keeping a single row per email makes "most recent code" equivalent
// to "the only code".
func (r *OTPRepository) Upsert(ctx context.Context, otp *models.OTPVerification) error {
	log.Printf("[DEBUG] OTPRepository.Upsert: email=%s, expiresAt=%v\n", otp.Email, otp.ExpiresAt)

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"otp", "created_at", "expires_at", "used"}),
	}).Create(otp)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when upserting OTP: %v\n", result.Error)
		return result.Error
	}

	return nil
}

// FindByEmail retrieves the current code row for an email, nil when none exists
func (r *OTPRepository) FindByEmail(ctx context.Context, email string) (*models.OTPVerification, error) {
	log.Printf("[DEBUG] OTPRepository.FindByEmail: email=%s\n", email)

	var otp models.OTPVerification
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&otp)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Println("[DEBUG] No OTP row found")
			return nil, nil
		}
		log.Printf("[ERROR] Database error when finding OTP: %v\n", result.Error)
		return nil, result.Error
	}

	return &otp, nil
}

// MarkUsed flags a code as consumed
func (r *OTPRepository) MarkUsed(ctx context.Context, otp *models.OTPVerification) error {
	log.Printf("[DEBUG] OTPRepository.MarkUsed: email=%s\n", otp.Email)

	otp.Used = true
	result := r.db.WithContext(ctx).Save(otp)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when marking OTP used: %v\n", result.Error)
		return result.Error
	}

	return nil
}

// DeleteExpired removes all code rows past their expiry
func (r *OTPRepository) DeleteExpired(ctx context.Context) error {
	log.Println("[DEBUG] OTPRepository.DeleteExpired called")

	result := r.db.WithContext(ctx).Where("expires_at < ?", time.Now()).Delete(&models.OTPVerification{})
	if result.Error != nil {
		log.Printf("[ERROR] Database error when deleting expired OTPs: %v\n", result.Error)
		return result.Error
	}

	log.Printf("[DEBUG] Deleted %d expired OTP rows\n", result.RowsAffected)
	return nil
}
