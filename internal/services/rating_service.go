package services

import (
	"errors"
	"fmt"

	"github.com/skillnet/skillnet-api/internal/models"
	"github.com/skillnet/skillnet-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrSelfRating       = errors.New("you cannot rate yourself")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
	ErrDuplicateRating  = errors.New("you have already rated this user")
)

// RatingService handles post-collaboration user ratings.
type RatingService struct {
	ratingRepo     repository.RatingRepository
	userRepo       repository.UserRepository
	requestService *RequestService
}

// NewRatingService creates a new RatingService.
func NewRatingService(ratingRepo repository.RatingRepository, userRepo repository.UserRepository, requestService *RequestService) *RatingService {
	return &RatingService{
		ratingRepo:     ratingRepo,
		userRepo:       userRepo,
		requestService: requestService,
	}
}

// Rate records a 1-5 score from rater to rated. Self-ratings and second
// ratings for the same pair are refused; the composite primary key on
// (rater_id, rated_id) backstops the duplicate check under concurrency.
func (s *RatingService) Rate(raterID, ratedID uint64, rating int) (*models.UserRating, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrRatingOutOfRange
	}
	if raterID == ratedID {
		return nil, ErrSelfRating
	}

	if _, err := s.userRepo.FindByID(ratedID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find rated user: %w", err)
	}

	connected, err := s.requestService.AreConnected(raterID, ratedID)
	if err != nil {
		return nil, err
	}
	if !connected {
		return nil, ErrNotConnected
	}

	if _, err := s.ratingRepo.Find(raterID, ratedID); err == nil {
		return nil, ErrDuplicateRating
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing rating: %w", err)
	}

	userRating := &models.UserRating{
		RaterID: raterID,
		RatedID: ratedID,
		Rating:  rating,
	}

	if err := s.ratingRepo.Create(userRating); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateRating
		}
		return nil, fmt.Errorf("failed to create rating: %w", err)
	}

	return userRating, nil
}

// RatingsFor lists the ratings a user has received along with the average.
func (s *RatingService) RatingsFor(userID uint64) ([]models.UserRating, float64, int64, error) {
	ratings, err := s.ratingRepo.ListByRated(userID)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to list ratings: %w", err)
	}

	average, count, err := s.ratingRepo.AverageForUser(userID)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to compute rating average: %w", err)
	}

	return ratings, average, count, nil
}
