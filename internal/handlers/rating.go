package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillnet/skillnet-api/internal/dto"
	apierrors "github.com/skillnet/skillnet-api/internal/errors"
	"github.com/skillnet/skillnet-api/internal/middleware"
	"github.com/skillnet/skillnet-api/internal/services"
)

// RatingHandler serves user rating endpoints.
type RatingHandler struct {
	ratingService *services.RatingService
}

// NewRatingHandler creates a new RatingHandler.
func NewRatingHandler(ratingService *services.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// CreateRating records a 1-5 rating for a connected user.
func (h *RatingHandler) CreateRating(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	// Rating carries no `required` tag: zero is in-band so the range check
	// in the service can report it, not the binding layer.
	type CreateRatingRequest struct {
		RatedID uint64 `json:"rated_id" binding:"required"`
		Rating  int    `json:"rating"`
	}

	var req CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	rating, err := h.ratingService.Rate(userID, req.RatedID, req.Rating)
	if err != nil {
		respondRatingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRatingDTO(*rating))
}

// ListRatings lists the ratings a user has received plus the average.
func (h *RatingHandler) ListRatings(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user id")
		return
	}

	ratings, average, count, err := h.ratingService.RatingsFor(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to load ratings")
		return
	}

	c.JSON(http.StatusOK, dto.ToRatingSummaryDTO(ratings, average, count))
}

func respondRatingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRatingOutOfRange),
		errors.Is(err, services.ErrSelfRating):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrDuplicateRating):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrNotConnected):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
