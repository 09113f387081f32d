package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint64 `gorm:"primarykey" json:"id"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	FirstName    string `gorm:"type:varchar(100)" json:"first_name"`
	LastName     string `gorm:"type:varchar(100)" json:"last_name"`
	City         string `gorm:"type:varchar(100)" json:"city"`
	AvatarURL    string `gorm:"type:varchar(500)" json:"avatar_url"`

	EmailVerified                    bool       `gorm:"default:false" json:"email_verified"`
	EmailVerificationToken           string     `gorm:"type:varchar(100);index" json:"-"`
	EmailVerificationTokenExpiration *time.Time `json:"-"`
	ResetPasswordToken               string     `gorm:"type:varchar(100);index" json:"-"`
	ResetPasswordTokenExpiration     *time.Time `json:"-"`

	// Populated when the account was created or linked via Google OAuth.
	GoogleProfileID string `gorm:"type:varchar(100)" json:"-"`
	GoogleImageURL  string `gorm:"type:varchar(500)" json:"-"`

	LastSignedIn *time.Time     `json:"last_signed_in"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Skills           []UserSkill  `gorm:"foreignKey:UserID" json:"skills,omitempty"`
	SentRequests     []Request    `gorm:"foreignKey:SenderID" json:"-"`
	ReceivedRequests []Request    `gorm:"foreignKey:ReceiverID" json:"-"`
	RatingsReceived  []UserRating `gorm:"foreignKey:RatedID" json:"-"`
}
