package models

import "time"

// UserRating is a 1-5 score one user gives another after a collaboration.
// The composite primary key enforces one rating per (rater, rated) pair.
type UserRating struct {
	RaterID   uint64    `gorm:"primarykey" json:"rater_id"`
	RatedID   uint64    `gorm:"primarykey" json:"rated_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Rater User `gorm:"foreignKey:RaterID" json:"rater,omitempty"`
	Rated User `gorm:"foreignKey:RatedID" json:"rated,omitempty"`
}
