package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"storeapi.app/errors"
	"storeapi.app/models"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// RatingService handles rating submission and aggregate queries
type RatingService struct {
	ratingRepo RatingRepositoryInterface
	otpRepo    OTPRepositoryInterface
}

// NewRatingService creates a new rating service
func NewRatingService(ratingRepo RatingRepositoryInterface, otpRepo OTPRepositoryInterface) *RatingService {
	return &RatingService{
		ratingRepo: ratingRepo,
		otpRepo:    otpRepo,
	}
}

func (s *RatingService) validateSubmitRequest(req *models.SubmitRatingRequest) error {
	if req.Email == "" {
		return errors.NewValidationError("email is required")
	}
	if req.StoreID == 0 {
		return errors.NewValidationError("StoreID is required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return errors.NewValidationError("rating must be between 1 and 5")
	}
	return nil
}

// SubmitRating stores a rating for (email, store). The email must hold a
// verified code. A repeat submission for the same pair updates the existing
// row rather than creating a duplicate.
func (s *RatingService) SubmitRating(ctx context.Context, req *models.SubmitRatingRequest) error {
	log.Printf("[DEBUG] RatingService.SubmitRating called with: %+v\n", req)

	if err := s.validateSubmitRequest(req); err != nil {
		return err
	}

	otp, err := s.otpRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return errors.NewDatabaseError("failed to check email verification", err)
	}
	if otp == nil || !otp.Used {
		return errors.NewForbiddenError("verify email first")
	}

	rating := &models.Rating{
		StoreID:     req.StoreID,
		Email:       req.Email,
		Name:        req.Name,
		Mobile:      req.Mobile,
		Rating:      req.Rating,
		SubmittedAt: time.Now(),
	}
	if err := s.ratingRepo.Upsert(ctx, rating); err != nil {
		return errors.NewDatabaseError("failed to save rating", err)
	}

	log.Printf("[DEBUG] Rating saved for email=%s, store=%d\n", req.Email, req.StoreID)
	return nil
}

// GetRatingSummary returns the average score and count for a store. A store
// without ratings yields "0.0" and 0, never an error.
func (s *RatingService) GetRatingSummary(ctx context.Context, storeID uint) (*models.RatingSummary, error) {
	if storeID == 0 {
		return nil, errors.NewValidationError("Store ID is required")
	}

	average, count, err := s.ratingRepo.Aggregate(ctx, storeID)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to aggregate ratings", err)
	}

	return &models.RatingSummary{
		AverageRating: fmt.Sprintf("%.1f", average),
		RatingCount:   count,
	}, nil
}

// ListRatings returns one page of a store's ratings, newest first, with the
// total row count for client-side pagination
func (s *RatingService) ListRatings(ctx context.Context, storeID uint, page, limit int) (*models.RatingPage, error) {
	if storeID == 0 {
		return nil, errors.NewValidationError("Store ID is required")
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	ratings, total, err := s.ratingRepo.ListByStore(ctx, storeID, page, limit)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list ratings", err)
	}

	return &models.RatingPage{
		Ratings: ratings,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}
