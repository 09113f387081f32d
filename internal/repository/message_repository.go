package repository

import (
	"github.com/skillnet/skillnet-api/internal/database"
	"github.com/skillnet/skillnet-api/internal/models"
	"gorm.io/gorm"
)

// GormMessageRepository is a GORM implementation of MessageRepository
type GormMessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &GormMessageRepository{db: db}
}

// Create creates a new message
func (r *GormMessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// ListConversation lists both directions of a conversation, oldest first
func (r *GormMessageRepository) ListConversation(userA, userB uint64, page, pageSize int) ([]models.Message, int64, error) {
	var messages []models.Message

	query := r.db.Model(&models.Message{}).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("created_at ASC, id ASC").
		Scopes(database.Paginate(page, pageSize)).
		Find(&messages).Error; err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

// MarkConversationRead flags all messages from sender to receiver as read
func (r *GormMessageRepository) MarkConversationRead(receiverID, senderID uint64) (int64, error) {
	result := r.db.Model(&models.Message{}).
		Where("receiver_id = ? AND sender_id = ? AND `read` = ?", receiverID, senderID, false).
		Update("read", true)
	return result.RowsAffected, result.Error
}

// CountUnread counts unread messages addressed to a user
func (r *GormMessageRepository) CountUnread(userID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("receiver_id = ? AND `read` = ?", userID, false).
		Count(&count).Error
	return count, err
}
