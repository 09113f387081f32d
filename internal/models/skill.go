package models

import (
	"time"
)

// Skill is a catalog entry that users attach to their profile with a
// proficiency level. Names are unique across the catalog.
type Skill struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	UserSkills []UserSkill `gorm:"foreignKey:SkillID" json:"-"`
}
