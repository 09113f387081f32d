package dto

import (
	"time"

	"github.com/skillnet/skillnet-api/internal/models"
)

// RatingDTO represents a user rating in API responses
type RatingDTO struct {
	RaterID   uint64    `json:"rater_id"`
	RatedID   uint64    `json:"rated_id"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	Rater     *UserDTO  `json:"rater,omitempty"`
}

// RatingSummaryDTO is the ratings a user has received plus the average
type RatingSummaryDTO struct {
	Ratings       []RatingDTO `json:"ratings"`
	AverageRating float64     `json:"average_rating"`
	RatingCount   int64       `json:"rating_count"`
}

// ToRatingDTO converts a UserRating model to RatingDTO
func ToRatingDTO(rating models.UserRating) RatingDTO {
	dto := RatingDTO{
		RaterID:   rating.RaterID,
		RatedID:   rating.RatedID,
		Rating:    rating.Rating,
		CreatedAt: rating.CreatedAt,
	}

	if rating.Rater.ID != 0 {
		rater := ToUserDTO(rating.Rater)
		dto.Rater = &rater
	}

	return dto
}

// ToRatingSummaryDTO converts ratings plus aggregate values to a summary DTO
func ToRatingSummaryDTO(ratings []models.UserRating, average float64, count int64) RatingSummaryDTO {
	dtos := make([]RatingDTO, len(ratings))
	for i, rating := range ratings {
		dtos[i] = ToRatingDTO(rating)
	}

	return RatingSummaryDTO{
		Ratings:       dtos,
		AverageRating: average,
		RatingCount:   count,
	}
}
