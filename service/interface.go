package service

import (
	"context"
	"time"

	"storeapi.app/models"
)

// CatalogServiceInterface defines the interface for geo catalog lookups
type CatalogServiceInterface interface {
	ListStates(ctx context.Context) ([]models.State, error)
	ListStores(ctx context.Context) ([]models.Store, error)
	GetCitiesByState(ctx context.Context, stateID uint) ([]models.City, error)
	GetStoresByCity(ctx context.Context, cityID uint) ([]models.Store, error)
	GetStoresByCityName(ctx context.Context, cityName string) ([]models.Store, error)
	GetStoresByState(ctx context.Context, stateID uint, stateName string) ([]models.Store, error)
	GetStateDescription(ctx context.Context, req *models.StateDescriptionRequest) (*models.StateDescriptionResponse, error)
	GetStoreTimings(ctx context.Context, storeID uint) (*models.StoreTimingsResponse, error)
}

// OTPServiceInterface defines the interface for the verification code flow
type OTPServiceInterface interface {
	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) error
}

// RatingServiceInterface defines the interface for rating operations
type RatingServiceInterface interface {
	SubmitRating(ctx context.Context, req *models.SubmitRatingRequest) error
	GetRatingSummary(ctx context.Context, storeID uint) (*models.RatingSummary, error)
	ListRatings(ctx context.Context, storeID uint, page, limit int) (*models.RatingPage, error)
}

// EmailServiceInterface defines the interface for email operations
type EmailServiceInterface interface {
	SendOTPEmail(email, code string, expiresIn time.Duration) error
}

// GeoRepositoryInterface defines the interface for catalog data operations
type GeoRepositoryInterface interface {
	ListStates(ctx context.Context) ([]models.State, error)
	ListStores(ctx context.Context) ([]models.Store, error)
	FindCitiesByState(ctx context.Context, stateID uint) ([]models.City, error)
	FindStoresByCity(ctx context.Context, cityID uint) ([]models.Store, error)
	FindStoresByCityName(ctx context.Context, cityName string) ([]models.Store, error)
	FindStoresByStateID(ctx context.Context, stateID uint) ([]models.Store, error)
	FindStoresByStateName(ctx context.Context, stateName string) ([]models.Store, error)
	FindStateByID(ctx context.Context, stateID uint) (*models.State, error)
	FindStateByName(ctx context.Context, name string) (*models.State, error)
	FindStateByCityName(ctx context.Context, cityName string) (*models.State, error)
}

// StoreTimingRepositoryInterface defines the interface for schedule lookups
type StoreTimingRepositoryInterface interface {
	FindByStore(ctx context.Context, storeID uint) (*models.StoreTiming, error)
}

// OTPRepositoryInterface defines the interface for verification code storage
type OTPRepositoryInterface interface {
	Upsert(ctx context.Context, otp *models.OTPVerification) error
	FindByEmail(ctx context.Context, email string) (*models.OTPVerification, error)
	MarkUsed(ctx context.Context, otp *models.OTPVerification) error
	DeleteExpired(ctx context.Context) error
}

// RatingRepositoryInterface defines the interface for rating data operations
type RatingRepositoryInterface interface {
	Upsert(ctx context.Context, rating *models.Rating) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Aggregate(ctx context.Context, storeID uint) (float64, int64, error)
	ListByStore(ctx context.Context, storeID uint, page, limit int) ([]models.Rating, int64, error)
}

// Ensure implementations satisfy interfaces
var _ CatalogServiceInterface = (*CatalogService)(nil)
var _ OTPServiceInterface = (*OTPService)(nil)
var _ RatingServiceInterface = (*RatingService)(nil)
var _ EmailServiceInterface = (*EmailService)(nil)
