package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/skillnet/skillnet-api/internal/constants"
	"github.com/skillnet/skillnet-api/internal/models"
	"github.com/skillnet/skillnet-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrSkillNameRequired      = errors.New("skill name is required")
	ErrSkillNameTaken         = errors.New("a skill with this name already exists")
	ErrSkillNotFound          = errors.New("skill not found")
	ErrSkillInUse             = errors.New("skill is being used by one or more users and cannot be deleted")
	ErrDuplicateUserSkill     = errors.New("you already have this skill in your profile")
	ErrUserSkillNotFound      = errors.New("skill is not in your profile")
	ErrInvalidProficiency     = errors.New("proficiency must be Beginner, Intermediate, or Expert")
	ErrAIServiceNotConfigured = errors.New("AI service is not configured")
)

// RecommendationSource tags where a recommendation list came from.
type RecommendationSource string

const (
	// SourceEmpty: the user has no skills, so the AI backend was never called.
	SourceEmpty RecommendationSource = "empty"
	// SourceAI: the language model produced the list.
	SourceAI RecommendationSource = "ai"
	// SourceDefault: the static fallback after the retry budget was exhausted.
	SourceDefault RecommendationSource = "default"
)

// RecommendationResult is what the recommendation feature hands the caller.
// By contract it always contains something usable.
type RecommendationResult struct {
	Recommendations []SkillRecommendation `json:"recommendations"`
	Source          RecommendationSource  `json:"source"`
}

// DefaultRecommendations is the static fallback list served when the AI
// backend cannot produce a usable answer.
var DefaultRecommendations = []SkillRecommendation{
	{
		Name:        "Project Management",
		Description: "The practice of leading the work of a team to achieve desired outcomes within specific constraints.",
		Reason:      "A universal skill that complements technical abilities with organizational competence.",
	},
	{
		Name:        "Data Analysis",
		Description: "The process of inspecting, cleansing, transforming, and modeling data to discover useful information.",
		Reason:      "Growing in demand across virtually all industries and complementary to most technical skills.",
	},
	{
		Name:        "Public Speaking",
		Description: "The act of performing a speech to a live audience to inform, persuade or entertain.",
		Reason:      "Enhances your ability to communicate ideas effectively regardless of your field.",
	},
	{
		Name:        "Technical Writing",
		Description: "Creating documentation that helps users understand and use a product or service.",
		Reason:      "Critical for sharing knowledge and documenting processes in any technical role.",
	},
	{
		Name:        "Time Management",
		Description: "Planning and controlling how much time to spend on specific activities.",
		Reason:      "Foundational for productivity and effectiveness in any professional context.",
	},
}

// SkillService handles the skill catalog, user skill profiles, and the
// AI-backed extraction and recommendation features.
type SkillService struct {
	skillRepo repository.SkillRepository
	userRepo  repository.UserRepository
	aiService *AIService
}

// NewSkillService creates a new SkillService. aiService may be nil when no
// API key is configured; extraction then fails fast and recommendations fall
// back to the static list.
func NewSkillService(skillRepo repository.SkillRepository, userRepo repository.UserRepository, aiService *AIService) *SkillService {
	return &SkillService{
		skillRepo: skillRepo,
		userRepo:  userRepo,
		aiService: aiService,
	}
}

// ListSkills lists the catalog, optionally filtered by a name substring.
func (s *SkillService) ListSkills(nameFilter string) ([]models.Skill, error) {
	skills, err := s.skillRepo.List(nameFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}

// CreateSkill adds a skill to the catalog.
func (s *SkillService) CreateSkill(name, description string) (*models.Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrSkillNameRequired
	}

	if _, err := s.skillRepo.FindByName(name); err == nil {
		return nil, ErrSkillNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check skill name: %w", err)
	}

	skill := &models.Skill{
		Name:        name,
		Description: strings.TrimSpace(description),
	}

	if err := s.skillRepo.Create(skill); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSkillNameTaken
		}
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}

	return skill, nil
}

// DeleteSkill removes a catalog skill unless any user still references it.
func (s *SkillService) DeleteSkill(skillID uint64) error {
	skill, err := s.skillRepo.FindByID(skillID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSkillNotFound
		}
		return fmt.Errorf("failed to find skill: %w", err)
	}

	refs, err := s.skillRepo.CountReferences(skillID)
	if err != nil {
		return fmt.Errorf("failed to count skill references: %w", err)
	}
	if refs > 0 {
		return fmt.Errorf("cannot delete skill %q: %w", skill.Name, ErrSkillInUse)
	}

	if err := s.skillRepo.Delete(skillID); err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}

	return nil
}

// ListUserSkills lists a user's skills with proficiency.
func (s *SkillService) ListUserSkills(userID uint64) ([]models.UserSkill, error) {
	userSkills, err := s.skillRepo.ListUserSkills(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user skills: %w", err)
	}
	return userSkills, nil
}

// AddUserSkill attaches a catalog skill to a user's profile. The existence
// check is a fast path; the composite primary key on (user_id, skill_id)
// closes the race between two concurrent creations.
func (s *SkillService) AddUserSkill(userID, skillID uint64, proficiency models.ProficiencyLevel) (*models.UserSkill, error) {
	if !proficiency.Valid() {
		return nil, ErrInvalidProficiency
	}

	skill, err := s.skillRepo.FindByID(skillID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("failed to find skill: %w", err)
	}

	if _, err := s.skillRepo.FindUserSkill(userID, skillID); err == nil {
		return nil, ErrDuplicateUserSkill
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check user skill: %w", err)
	}

	userSkill := &models.UserSkill{
		UserID:      userID,
		SkillID:     skillID,
		Proficiency: proficiency,
	}

	if err := s.skillRepo.AddUserSkill(userSkill); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUserSkill
		}
		return nil, fmt.Errorf("failed to add user skill: %w", err)
	}

	// Hand back the catalog entry already loaded for the existence check so
	// callers do not have to re-read the row.
	userSkill.Skill = *skill
	return userSkill, nil
}

// RemoveUserSkill detaches a skill from a user's profile.
func (s *SkillService) RemoveUserSkill(userID, skillID uint64) error {
	if _, err := s.skillRepo.FindUserSkill(userID, skillID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserSkillNotFound
		}
		return fmt.Errorf("failed to find user skill: %w", err)
	}

	if err := s.skillRepo.RemoveUserSkill(userID, skillID); err != nil {
		return fmt.Errorf("failed to remove user skill: %w", err)
	}

	return nil
}

// ExtractSkills runs the AI extraction over free text. Unlike recommendation
// this is a primary feature with a strict contract: failures propagate.
func (s *SkillService) ExtractSkills(ctx context.Context, content string) ([]ExtractedSkill, error) {
	if s.aiService == nil {
		return nil, ErrAIServiceNotConfigured
	}

	skills, err := s.aiService.ExtractSkills(ctx, content)
	if err != nil {
		return nil, err
	}

	if len(skills) > constants.MaxExtractedSkills {
		skills = skills[:constants.MaxExtractedSkills]
	}

	return skills, nil
}

// Recommend produces next-skill suggestions for a user. It never fails from
// the caller's point of view: a user with no skills gets an empty list
// without touching the AI backend, and any failure past that point falls back
// to the static default list.
func (s *SkillService) Recommend(ctx context.Context, userID uint64) RecommendationResult {
	userSkills, err := s.skillRepo.ListUserSkills(userID)
	if err != nil {
		return RecommendationResult{Recommendations: DefaultRecommendations, Source: SourceDefault}
	}

	if len(userSkills) == 0 {
		return RecommendationResult{Recommendations: []SkillRecommendation{}, Source: SourceEmpty}
	}

	if s.aiService == nil {
		return RecommendationResult{Recommendations: DefaultRecommendations, Source: SourceDefault}
	}

	summaries := make([]UserSkillSummary, len(userSkills))
	for i, us := range userSkills {
		summaries[i] = UserSkillSummary{
			Name:        us.Skill.Name,
			Description: us.Skill.Description,
			Proficiency: us.Proficiency,
		}
	}

	recs, err := s.aiService.RecommendSkills(ctx, summaries)
	if err != nil {
		return RecommendationResult{Recommendations: DefaultRecommendations, Source: SourceDefault}
	}

	if len(recs) > constants.MaxRecommendations {
		recs = recs[:constants.MaxRecommendations]
	}

	return RecommendationResult{Recommendations: recs, Source: SourceAI}
}
