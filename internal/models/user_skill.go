package models

import "time"

type ProficiencyLevel string

const (
	ProficiencyBeginner     ProficiencyLevel = "Beginner"
	ProficiencyIntermediate ProficiencyLevel = "Intermediate"
	ProficiencyExpert       ProficiencyLevel = "Expert"
)

// Valid reports whether the level is one of the three allowed values.
func (p ProficiencyLevel) Valid() bool {
	switch p {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyExpert:
		return true
	}
	return false
}

// UserSkill joins a user to a skill with a proficiency level. The composite
// primary key makes the (user, skill) pair unique at the storage level.
type UserSkill struct {
	UserID      uint64           `gorm:"primarykey" json:"user_id"`
	SkillID     uint64           `gorm:"primarykey" json:"skill_id"`
	Proficiency ProficiencyLevel `gorm:"type:varchar(20);not null" json:"proficiency"`
	CreatedAt   time.Time        `json:"created_at"`

	// Relations
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Skill Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}
