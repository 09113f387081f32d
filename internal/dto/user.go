package dto

import (
	"time"

	"github.com/skillnet/skillnet-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID            uint64 `json:"id"`
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	City          string `json:"city,omitempty"`
	AvatarURL     string `json:"avatar_url,omitempty"`
	EmailVerified bool   `json:"email_verified"`
}

// UserProfileDTO is a user together with their skills and rating summary
type UserProfileDTO struct {
	UserDTO
	Skills        []UserSkillDTO `json:"skills"`
	AverageRating float64        `json:"average_rating"`
	RatingCount   int64          `json:"rating_count"`
	MemberSince   time.Time      `json:"member_since"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:            user.ID,
		Email:         user.Email,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		City:          user.City,
		AvatarURL:     user.AvatarURL,
		EmailVerified: user.EmailVerified,
	}
}

// ToUserProfileDTO converts a user plus related data to a profile DTO
func ToUserProfileDTO(user models.User, userSkills []models.UserSkill, average float64, count int64) UserProfileDTO {
	skills := make([]UserSkillDTO, len(userSkills))
	for i, us := range userSkills {
		skills[i] = ToUserSkillDTO(us)
	}

	return UserProfileDTO{
		UserDTO:       ToUserDTO(user),
		Skills:        skills,
		AverageRating: average,
		RatingCount:   count,
		MemberSince:   user.CreatedAt,
	}
}
