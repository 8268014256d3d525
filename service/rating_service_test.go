package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	apperrors "storeapi.app/errors"
	"storeapi.app/models"
)

func verifiedOTP(email string) *models.OTPVerification {
	now := time.Now()
	return &models.OTPVerification{
		Email:     email,
		OTP:       "123456",
		CreatedAt: now,
		ExpiresAt: now.Add(5 * time.Minute),
		Used:      true,
	}
}

func TestRatingService_SubmitRating_Success(t *testing.T) {
	ratingRepo := new(mockRatingRepo)
	otpRepo := new(mockOTPRepo)
	svc := NewRatingService(ratingRepo, otpRepo)

	otpRepo.On("FindByEmail", "a@b.com").Return(verifiedOTP("a@b.com"), nil)
	ratingRepo.On("Upsert", mock.MatchedBy(func(rating *models.Rating) bool {
		return rating.Email == "a@b.com" &&
			rating.StoreID == 1 &&
			rating.Rating == 4 &&
			rating.Name == "Alice" &&
			!rating.SubmittedAt.IsZero()
	})).Return(nil)

	err := svc.SubmitRating(context.Background(), &models.SubmitRatingRequest{
		Email:   "a@b.com",
		StoreID: 1,
		Name:    "Alice",
		Rating:  4,
	})

	assert.NoError(t, err)
	ratingRepo.AssertExpectations(t)
	otpRepo.AssertExpectations(t)
}

func TestRatingService_SubmitRating_Validation(t *testing.T) {
	svc := NewRatingService(new(mockRatingRepo), new(mockOTPRepo))

	tests := []struct {
		name string
		req  *models.SubmitRatingRequest
	}{
		{"MissingEmail", &models.SubmitRatingRequest{StoreID: 1, Rating: 4}},
		{"MissingStoreID", &models.SubmitRatingRequest{Email: "a@b.com", Rating: 4}},
		{"RatingTooLow", &models.SubmitRatingRequest{Email: "a@b.com", StoreID: 1, Rating: 0}},
		{"RatingTooHigh", &models.SubmitRatingRequest{Email: "a@b.com", StoreID: 1, Rating: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.SubmitRating(context.Background(), tt.req)

			var appErr *apperrors.AppError
			assert.True(t, errors.As(err, &appErr))
			assert.Equal(t, apperrors.ValidationError, appErr.Type)
		})
	}
}

func TestRatingService_SubmitRating_Unverified(t *testing.T) {
	ratingRepo := new(mockRatingRepo)
	otpRepo := new(mockOTPRepo)
	svc := NewRatingService(ratingRepo, otpRepo)

	t.Run("NoOTPRow", func(t *testing.T) {
		otpRepo.On("FindByEmail", "nobody@b.com").Return(nil, nil).Once()

		err := svc.SubmitRating(context.Background(), &models.SubmitRatingRequest{
			Email: "nobody@b.com", StoreID: 1, Rating: 4,
		})

		var appErr *apperrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ForbiddenError, appErr.Type)
		assert.Equal(t, "verify email first", appErr.Message)
	})

	t.Run("IssuedButNeverVerified", func(t *testing.T) {
		pending := verifiedOTP("pending@b.com")
		pending.Used = false
		otpRepo.On("FindByEmail", "pending@b.com").Return(pending, nil).Once()

		err := svc.SubmitRating(context.Background(), &models.SubmitRatingRequest{
			Email: "pending@b.com", StoreID: 1, Rating: 4,
		})

		var appErr *apperrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ForbiddenError, appErr.Type)
	})

	ratingRepo.AssertNotCalled(t, "Upsert", mock.Anything)
}

func TestRatingService_GetRatingSummary(t *testing.T) {
	t.Run("FormatsAverageToOneDecimal", func(t *testing.T) {
		ratingRepo := new(mockRatingRepo)
		svc := NewRatingService(ratingRepo, new(mockOTPRepo))
		ratingRepo.On("Aggregate", uint(1)).Return(4.0, int64(1), nil)

		summary, err := svc.GetRatingSummary(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "4.0", summary.AverageRating)
		assert.Equal(t, int64(1), summary.RatingCount)
	})

	t.Run("RoundsHalfUp", func(t *testing.T) {
		ratingRepo := new(mockRatingRepo)
		svc := NewRatingService(ratingRepo, new(mockOTPRepo))
		ratingRepo.On("Aggregate", uint(1)).Return(4.25, int64(4), nil)

		summary, err := svc.GetRatingSummary(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "4.2", summary.AverageRating)
	})

	t.Run("NoRatings_ZeroSummary", func(t *testing.T) {
		ratingRepo := new(mockRatingRepo)
		svc := NewRatingService(ratingRepo, new(mockOTPRepo))
		ratingRepo.On("Aggregate", uint(1)).Return(0.0, int64(0), nil)

		summary, err := svc.GetRatingSummary(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "0.0", summary.AverageRating)
		assert.Equal(t, int64(0), summary.RatingCount)
	})

	t.Run("MissingStoreID", func(t *testing.T) {
		svc := NewRatingService(new(mockRatingRepo), new(mockOTPRepo))

		_, err := svc.GetRatingSummary(context.Background(), 0)

		var appErr *apperrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ValidationError, appErr.Type)
	})
}

func TestRatingService_ListRatings(t *testing.T) {
	t.Run("DefaultsPageAndLimit", func(t *testing.T) {
		ratingRepo := new(mockRatingRepo)
		svc := NewRatingService(ratingRepo, new(mockOTPRepo))
		ratingRepo.On("ListByStore", uint(1), 1, 10).Return([]models.Rating{}, int64(0), nil)

		page, err := svc.ListRatings(context.Background(), 1, 0, 0)
		assert.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 10, page.Limit)
		ratingRepo.AssertExpectations(t)
	})

	t.Run("CapsLimit", func(t *testing.T) {
		ratingRepo := new(mockRatingRepo)
		svc := NewRatingService(ratingRepo, new(mockOTPRepo))
		ratingRepo.On("ListByStore", uint(1), 2, 100).Return([]models.Rating{}, int64(250), nil)

		page, err := svc.ListRatings(context.Background(), 1, 2, 5000)
		assert.NoError(t, err)
		assert.Equal(t, 100, page.Limit)
		assert.Equal(t, int64(250), page.Total)
	})

	t.Run("MissingStoreID", func(t *testing.T) {
		svc := NewRatingService(new(mockRatingRepo), new(mockOTPRepo))

		_, err := svc.ListRatings(context.Background(), 0, 1, 10)

		var appErr *apperrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ValidationError, appErr.Type)
	})
}
