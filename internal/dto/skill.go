package dto

import (
	"github.com/skillnet/skillnet-api/internal/models"
)

// SkillDTO represents a catalog skill in API responses
type SkillDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UserSkillDTO represents a user's skill with proficiency
type UserSkillDTO struct {
	Skill       SkillDTO                `json:"skill"`
	Proficiency models.ProficiencyLevel `json:"proficiency"`
}

// ToSkillDTO converts a Skill model to SkillDTO
func ToSkillDTO(skill models.Skill) SkillDTO {
	return SkillDTO{
		ID:          skill.ID,
		Name:        skill.Name,
		Description: skill.Description,
	}
}

// ToUserSkillDTO converts a UserSkill model to UserSkillDTO
func ToUserSkillDTO(userSkill models.UserSkill) UserSkillDTO {
	return UserSkillDTO{
		Skill:       ToSkillDTO(userSkill.Skill),
		Proficiency: userSkill.Proficiency,
	}
}
