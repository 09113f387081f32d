package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/skillnet/skillnet-api/internal/errors"
	"github.com/skillnet/skillnet-api/internal/middleware"
	"github.com/skillnet/skillnet-api/internal/services"
)

// AIHandler serves the AI-backed extraction and recommendation endpoints.
type AIHandler struct {
	skillService *services.SkillService
}

// NewAIHandler creates a new AIHandler.
func NewAIHandler(skillService *services.SkillService) *AIHandler {
	return &AIHandler{
		skillService: skillService,
	}
}

// ExtractSkills analyzes free text and returns structured skills. Failures
// propagate: extraction is a primary feature and must signal clearly when
// the model's output could not be used.
func (h *AIHandler) ExtractSkills(c *gin.Context) {
	type ExtractRequest struct {
		Content string `json:"content" binding:"required"`
	}

	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Content is required for skill extraction")
		return
	}

	skills, err := h.skillService.ExtractSkills(c.Request.Context(), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrContentRequired):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrAIServiceNotConfigured):
			apierrors.ServiceUnavailable(c, err.Error())
		case errors.Is(err, services.ErrUnparseableResponse),
			errors.Is(err, services.ErrSkillWithoutName),
			errors.Is(err, services.ErrAIEmptyResponse):
			apierrors.UnprocessableEntity(c, err.Error())
		default:
			apierrors.ServiceUnavailable(c, "Skill extraction failed")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

// Recommendations returns next-skill suggestions for the current user. By
// contract this never fails: the service falls back to a static list when
// the AI backend cannot produce a usable answer.
func (h *AIHandler) Recommendations(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	result := h.skillService.Recommend(c.Request.Context(), userID)
	c.JSON(http.StatusOK, result)
}
