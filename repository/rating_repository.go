package repository

import (
	"context"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"storeapi.app/models"
)

// RatingRepository handles data access operations for ratings
type RatingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new repository for rating data
func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Upsert inserts a rating or updates the existing row for the same
// (email, store) pair. The unique index on that pair plus ON CONFLICT makes
// the write atomic, so two concurrent submissions cannot create duplicates.
func (r *RatingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	log.Printf("[DEBUG] RatingRepository.Upsert: email=%s, storeID=%d, rating=%d\n",
		rating.Email, rating.StoreID, rating.Rating)

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}, {Name: "store_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "mobile", "rating", "submitted_at"}),
	}).Create(rating)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when upserting rating: %v\n", result.Error)
		return result.Error
	}

	return nil
}

// ExistsByEmail reports whether the email has any finalized rating row
func (r *RatingRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Rating{}).Where("email = ?", email).Count(&count)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when counting ratings by email: %v\n", result.Error)
		return false, result.Error
	}
	return count > 0, nil
}

type ratingAggregate struct {
	Average float64
	Count   int64
}

// Aggregate returns the average score and row count for a store. COALESCE
// keeps the average at zero for stores without ratings instead of NULL.
func (r *RatingRepository) Aggregate(ctx context.Context, storeID uint) (float64, int64, error) {
	log.Printf("[DEBUG] RatingRepository.Aggregate: storeID=%d\n", storeID)

	var agg ratingAggregate
	result := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("COALESCE(AVG(rating), 0) as average, COUNT(*) as count").
		Where("store_id = ?", storeID).
		Scan(&agg)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when aggregating ratings: %v\n", result.Error)
		return 0, 0, result.Error
	}

	return agg.Average, agg.Count, nil
}

// ListByStore retrieves one page of ratings for a store ordered by submission
// time descending, together with the total row count for pagination.
func (r *RatingRepository) ListByStore(ctx context.Context, storeID uint, page, limit int) ([]models.Rating, int64, error) {
	log.Printf("[DEBUG] RatingRepository.ListByStore: storeID=%d, page=%d, limit=%d\n", storeID, page, limit)

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Rating{}).Where("store_id = ?", storeID).Count(&total).Error; err != nil {
		log.Printf("[ERROR] Database error when counting ratings: %v\n", err)
		return nil, 0, err
	}

	var ratings []models.Rating
	offset := (page - 1) * limit
	result := r.db.WithContext(ctx).Where("store_id = ?", storeID).
		Order("submitted_at desc").
		Offset(offset).
		Limit(limit).
		Find(&ratings)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when listing ratings: %v\n", result.Error)
		return nil, 0, result.Error
	}

	log.Printf("[DEBUG] Found %d of %d ratings for store %d\n", len(ratings), total, storeID)
	return ratings, total, nil
}
