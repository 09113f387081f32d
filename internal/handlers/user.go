package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillnet/skillnet-api/internal/dto"
	apierrors "github.com/skillnet/skillnet-api/internal/errors"
	"github.com/skillnet/skillnet-api/internal/middleware"
	"github.com/skillnet/skillnet-api/internal/models"
	"github.com/skillnet/skillnet-api/internal/repository"
	"github.com/skillnet/skillnet-api/internal/services"
	"github.com/skillnet/skillnet-api/internal/utils"
)

// UserHandler serves user discovery and profile endpoints.
type UserHandler struct {
	userRepo      repository.UserRepository
	authService   *services.AuthService
	skillService  *services.SkillService
	ratingService *services.RatingService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userRepo repository.UserRepository, authService *services.AuthService, skillService *services.SkillService, ratingService *services.RatingService) *UserHandler {
	return &UserHandler{
		userRepo:      userRepo,
		authService:   authService,
		skillService:  skillService,
		ratingService: ratingService,
	}
}

// ListUsers searches users by name or by skill. `?name=` matches first or
// last name; `?skill=` matches users holding a skill whose name contains the
// term. Skill search wins when both are present.
func (h *UserHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	var (
		found []models.User
		total int64
		err   error
	)

	if skillTerm := c.Query("skill"); skillTerm != "" {
		found, total, err = h.userRepo.SearchBySkillName(skillTerm, params.Page, params.Limit)
	} else {
		found, total, err = h.userRepo.SearchByName(c.Query("name"), params.Page, params.Limit)
	}
	if err != nil {
		apierrors.InternalError(c, "Failed to search users")
		return
	}

	users := make([]dto.UserProfileDTO, len(found))
	for i, user := range found {
		users[i] = dto.ToUserProfileDTO(user, user.Skills, 0, 0)
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetUser returns a user's public profile with skills and rating summary.
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user id")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	userSkills, err := h.skillService.ListUserSkills(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to load user skills")
		return
	}

	_, average, count, err := h.ratingService.RatingsFor(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to load ratings")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserProfileDTO(*user, userSkills, average, count))
}

// UpdateProfile applies profile edits to the current user.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdateProfileRequest struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		City      *string `json:"city"`
		AvatarURL *string `json:"avatar_url"`
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.UpdateProfile(userID, services.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		City:      req.City,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}
