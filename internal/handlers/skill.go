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
	"github.com/skillnet/skillnet-api/internal/services"
)

// SkillHandler serves the skill catalog and user skill profile endpoints.
type SkillHandler struct {
	skillService *services.SkillService
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(skillService *services.SkillService) *SkillHandler {
	return &SkillHandler{
		skillService: skillService,
	}
}

// ListSkills returns the skill catalog, optionally filtered by `?name=`.
func (h *SkillHandler) ListSkills(c *gin.Context) {
	skills, err := h.skillService.ListSkills(c.Query("name"))
	if err != nil {
		apierrors.InternalError(c, "Failed to list skills")
		return
	}

	dtos := make([]dto.SkillDTO, len(skills))
	for i, skill := range skills {
		dtos[i] = dto.ToSkillDTO(skill)
	}

	c.JSON(http.StatusOK, gin.H{"skills": dtos})
}

// CreateSkill adds a skill to the catalog.
func (h *SkillHandler) CreateSkill(c *gin.Context) {
	type CreateSkillRequest struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}

	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	skill, err := h.skillService.CreateSkill(req.Name, req.Description)
	if err != nil {
		respondSkillError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSkillDTO(*skill))
}

// DeleteSkill removes a catalog skill unless users still reference it.
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	skillID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid skill id")
		return
	}

	if err := h.skillService.DeleteSkill(skillID); err != nil {
		respondSkillError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Skill deleted successfully",
	})
}

// ListUserSkills returns a user's skills with proficiency.
func (h *SkillHandler) ListUserSkills(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user id")
		return
	}

	userSkills, err := h.skillService.ListUserSkills(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to list user skills")
		return
	}

	dtos := make([]dto.UserSkillDTO, len(userSkills))
	for i, us := range userSkills {
		dtos[i] = dto.ToUserSkillDTO(us)
	}

	c.JSON(http.StatusOK, gin.H{"skills": dtos})
}

// AddUserSkill attaches a skill to the current user's profile.
func (h *SkillHandler) AddUserSkill(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type AddUserSkillRequest struct {
		SkillID     uint64                  `json:"skill_id" binding:"required"`
		Proficiency models.ProficiencyLevel `json:"proficiency" binding:"required"`
	}

	var req AddUserSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	userSkill, err := h.skillService.AddUserSkill(userID, req.SkillID, req.Proficiency)
	if err != nil {
		respondSkillError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserSkillDTO(*userSkill))
}

// RemoveUserSkill detaches a skill from the current user's profile.
func (h *SkillHandler) RemoveUserSkill(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	skillID, err := strconv.ParseUint(c.Param("skillId"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid skill id")
		return
	}

	if err := h.skillService.RemoveUserSkill(userID, skillID); err != nil {
		respondSkillError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Skill removed from profile",
	})
}

func respondSkillError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSkillNameRequired),
		errors.Is(err, services.ErrInvalidProficiency):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrSkillNameTaken),
		errors.Is(err, services.ErrDuplicateUserSkill):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrSkillInUse):
		apierrors.UnprocessableEntity(c, err.Error())
	case errors.Is(err, services.ErrSkillNotFound),
		errors.Is(err, services.ErrUserSkillNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
