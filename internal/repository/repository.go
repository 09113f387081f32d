package repository

import (
	"github.com/skillnet/skillnet-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByVerificationToken finds a user holding the given email verification token
	FindByVerificationToken(token string) (*models.User, error)

	// FindByResetToken finds a user holding the given password reset token
	FindByResetToken(token string) (*models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error

	// SearchByName lists users whose first or last name contains the term
	SearchByName(term string, page, pageSize int) ([]models.User, int64, error)

	// SearchBySkillName lists users holding a skill whose name contains the term
	SearchBySkillName(term string, page, pageSize int) ([]models.User, int64, error)
}

// SkillRepository defines the interface for skill catalog and user-skill data access
type SkillRepository interface {
	// Create creates a new catalog skill
	Create(skill *models.Skill) error

	// FindByID finds a skill by ID
	FindByID(id uint64) (*models.Skill, error)

	// FindByName finds a skill by exact name
	FindByName(name string) (*models.Skill, error)

	// List lists catalog skills, optionally filtered by a name substring
	List(nameFilter string) ([]models.Skill, error)

	// Delete removes a skill from the catalog
	Delete(id uint64) error

	// CountReferences counts user skills referencing a catalog skill
	CountReferences(skillID uint64) (int64, error)

	// AddUserSkill attaches a skill to a user
	AddUserSkill(userSkill *models.UserSkill) error

	// RemoveUserSkill detaches a skill from a user
	RemoveUserSkill(userID, skillID uint64) error

	// FindUserSkill finds a specific (user, skill) pair
	FindUserSkill(userID, skillID uint64) (*models.UserSkill, error)

	// ListUserSkills lists a user's skills with the catalog entry preloaded
	ListUserSkills(userID uint64) ([]models.UserSkill, error)
}

// RequestDirection selects which side of a request a listing matches on.
type RequestDirection string

const (
	DirectionIncoming RequestDirection = "incoming"
	DirectionOutgoing RequestDirection = "outgoing"
	DirectionAny      RequestDirection = "any"
)

// RequestRepository defines the interface for connection request data access
type RequestRepository interface {
	// Create creates a new request
	Create(request *models.Request) error

	// FindByID finds a request by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Request, error)

	// Update persists changes to a request
	Update(request *models.Request) error

	// Delete removes a request record
	Delete(id uint64) error

	// FindActiveBetween finds a pending or accepted request connecting the two
	// users in either direction
	FindActiveBetween(userA, userB uint64) (*models.Request, error)

	// ListByUser lists requests where the user is sender, receiver, or either,
	// optionally filtered by status
	ListByUser(userID uint64, direction RequestDirection, status *models.RequestStatus) ([]models.Request, error)
}

// MessageRepository defines the interface for direct message data access
type MessageRepository interface {
	// Create creates a new message
	Create(message *models.Message) error

	// ListConversation lists both directions of a conversation, oldest first
	ListConversation(userA, userB uint64, page, pageSize int) ([]models.Message, int64, error)

	// MarkConversationRead flags all messages from sender to receiver as read
	// and returns how many rows changed
	MarkConversationRead(receiverID, senderID uint64) (int64, error)

	// CountUnread counts unread messages addressed to a user
	CountUnread(userID uint64) (int64, error)
}

// RatingRepository defines the interface for user rating data access
type RatingRepository interface {
	// Create creates a new rating
	Create(rating *models.UserRating) error

	// Find finds the rating a rater gave a rated user
	Find(raterID, ratedID uint64) (*models.UserRating, error)

	// ListByRated lists ratings received by a user with the rater preloaded
	ListByRated(ratedID uint64) ([]models.UserRating, error)

	// AverageForUser returns the average rating and rating count for a user
	AverageForUser(ratedID uint64) (float64, int64, error)
}
