// Package models defines data structures used throughout the application
package models

import (
	"time"
)

// State represents a state in the geo catalog. Reference data, maintained out-of-band.
type State struct {
	ID          uint   `json:"state_id" gorm:"primaryKey"`
	Name        string `json:"statename" gorm:"index;not null"`
	Description string `json:"description"`
}

// TableName overrides the default table name
func (State) TableName() string { return "states" }

// City represents a city belonging to exactly one state
type City struct {
	ID      uint   `json:"city_id" gorm:"primaryKey"`
	Name    string `json:"cityname" gorm:"index;not null"`
	StateID uint   `json:"state_id" gorm:"index;not null"`
	State   State  `json:"-" gorm:"foreignKey:StateID"`
}

// TableName overrides the default table name
func (City) TableName() string { return "cities" }

// Store represents a retail outlet belonging to exactly one city
type Store struct {
	ID     uint   `json:"store_id" gorm:"primaryKey"`
	Name   string `json:"storename" gorm:"index;not null"`
	CityID uint   `json:"city_id" gorm:"index;not null"`
	City   City   `json:"-" gorm:"foreignKey:CityID"`
}

// TableName keeps the legacy table name used by the persisted schema
func (Store) TableName() string { return "autoform" }

// StoreTiming holds the weekly opening schedule for a store, one column per weekday.
// At most one row per store.
type StoreTiming struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	StoreID   uint   `json:"store_id" gorm:"uniqueIndex;not null"`
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
	Saturday  string `json:"saturday"`
	Sunday    string `json:"sunday"`
	Closed    bool   `json:"closed" gorm:"default:false"`
}

// TableName overrides the default table name
func (StoreTiming) TableName() string { return "timings" }

// OTPVerification stores the current one-time code for an email address.
// Issuance upserts by email, so there is at most one row per address.
type OTPVerification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	OTP       string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used" gorm:"default:false"`
}

// TableName overrides the default table name
func (OTPVerification) TableName() string { return "otp_verification" }

// IsExpired reports whether the code is past its validity window
func (o *OTPVerification) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// Rating represents a single rating per (email, store) pair
type Rating struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	StoreID     uint      `json:"StoreID" gorm:"uniqueIndex:idx_ratings_email_store;not null"`
	Email       string    `json:"email" gorm:"uniqueIndex:idx_ratings_email_store;not null"`
	Name        string    `json:"name"`
	Mobile      string    `json:"mobile"`
	Rating      int       `json:"rating" gorm:"not null"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// TableName overrides the default table name
func (Rating) TableName() string { return "ratings" }

// SendOTPRequest represents data required to issue a verification code
type SendOTPRequest struct {
	Email string `json:"email" form:"email" binding:"required,email"`
}

// VerifyOTPRequest represents data required to verify a code
type VerifyOTPRequest struct {
	Email string `json:"email" form:"email" binding:"required,email"`
	OTP   string `json:"otp" form:"otp" binding:"required"`
}

// SubmitRatingRequest represents data required to submit a rating
type SubmitRatingRequest struct {
	StoreID uint   `json:"StoreID" form:"StoreID" binding:"required"`
	Email   string `json:"email" form:"email" binding:"required,email"`
	Rating  int    `json:"rating" form:"rating" binding:"required,min=1,max=5"`
	Name    string `json:"name" form:"name"`
	Mobile  string `json:"mobile" form:"mobile"`
}

// CitiesByStateRequest filters cities by their parent state
type CitiesByStateRequest struct {
	StateID uint `json:"state_id" form:"state_id"`
}

// StoresByCityRequest filters stores by their parent city
type StoresByCityRequest struct {
	CityID uint `json:"cityid" form:"cityid"`
}

// StoresByCityNameRequest filters stores by city name
type StoresByCityNameRequest struct {
	CityName string `json:"cityname" form:"cityname"`
}

// StoresByStateRequest filters stores by state id or name
type StoresByStateRequest struct {
	StateID   uint   `json:"stateid" form:"stateid"`
	StateName string `json:"statename" form:"statename"`
}

// StoreTimingsRequest asks for today's schedule of a store
type StoreTimingsRequest struct {
	StoreID uint `json:"storeid" form:"storeid"`
}

// StateDescriptionRequest resolves a state description by state id,
// state name, or the name of a city in the state
type StateDescriptionRequest struct {
	StateID   uint   `json:"state_id" form:"state_id"`
	StateName string `json:"state_name" form:"state_name"`
	CityName  string `json:"city_name" form:"city_name"`
}

// StoreTimingsResponse echoes the store, the resolved weekday and its schedule
type StoreTimingsResponse struct {
	StoreID uint   `json:"storeid"`
	Day     string `json:"day"`
	Timings string `json:"timings"`
	Closed  bool   `json:"closed"`
}

// StateDescriptionResponse carries the free-text description of a state
type StateDescriptionResponse struct {
	Description string `json:"description"`
}

// RatingSummary aggregates ratings for a store. AverageRating is formatted
// to one decimal place and defaults to "0.0" when no ratings exist.
type RatingSummary struct {
	AverageRating string `json:"averageRating"`
	RatingCount   int64  `json:"ratingCount"`
}

// RatingPage is one page of ratings plus the total row count for the store
type RatingPage struct {
	Ratings []Rating `json:"ratings"`
	Total   int64    `json:"total"`
	Page    int      `json:"page"`
	Limit   int      `json:"limit"`
}

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Message string `json:"message"`
}
