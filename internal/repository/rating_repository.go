package repository

import (
	"github.com/skillnet/skillnet-api/internal/models"
	"gorm.io/gorm"
)

// GormRatingRepository is a GORM implementation of RatingRepository
type GormRatingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new RatingRepository
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &GormRatingRepository{db: db}
}

// Create creates a new rating
func (r *GormRatingRepository) Create(rating *models.UserRating) error {
	return r.db.Create(rating).Error
}

// Find finds the rating a rater gave a rated user
func (r *GormRatingRepository) Find(raterID, ratedID uint64) (*models.UserRating, error) {
	var rating models.UserRating
	if err := r.db.Where("rater_id = ? AND rated_id = ?", raterID, ratedID).
		First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// ListByRated lists ratings received by a user with the rater preloaded
func (r *GormRatingRepository) ListByRated(ratedID uint64) ([]models.UserRating, error) {
	var ratings []models.UserRating
	if err := r.db.Preload("Rater").
		Where("rated_id = ?", ratedID).
		Order("created_at DESC").
		Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// AverageForUser returns the average rating and rating count for a user
func (r *GormRatingRepository) AverageForUser(ratedID uint64) (float64, int64, error) {
	var count int64
	if err := r.db.Model(&models.UserRating{}).
		Where("rated_id = ?", ratedID).
		Count(&count).Error; err != nil {
		return 0, 0, err
	}

	if count == 0 {
		return 0, 0, nil
	}

	var average float64
	if err := r.db.Model(&models.UserRating{}).
		Where("rated_id = ?", ratedID).
		Select("AVG(rating)").
		Scan(&average).Error; err != nil {
		return 0, 0, err
	}

	return average, count, nil
}
