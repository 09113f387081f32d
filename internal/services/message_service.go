package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/skillnet/skillnet-api/internal/models"
	"github.com/skillnet/skillnet-api/internal/repository"
)

var (
	ErrMessageContentRequired = errors.New("message content is required")
	ErrNotConnected           = errors.New("you are not connected with this user")
)

// MessageService handles direct messages between connected users.
type MessageService struct {
	messageRepo    repository.MessageRepository
	requestService *RequestService
}

// NewMessageService creates a new MessageService.
func NewMessageService(messageRepo repository.MessageRepository, requestService *RequestService) *MessageService {
	return &MessageService{
		messageRepo:    messageRepo,
		requestService: requestService,
	}
}

// Send delivers a message from sender to receiver. The pair must hold an
// accepted connection.
func (s *MessageService) Send(senderID, receiverID uint64, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrMessageContentRequired
	}

	connected, err := s.requestService.AreConnected(senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if !connected {
		return nil, ErrNotConnected
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}

	if err := s.messageRepo.Create(message); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	return message, nil
}

// Conversation lists both directions of a conversation, oldest first.
// Clients poll this on a fixed interval to approximate live updates.
func (s *MessageService) Conversation(userID, peerID uint64, page, pageSize int) ([]models.Message, int64, error) {
	messages, total, err := s.messageRepo.ListConversation(userID, peerID, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load conversation: %w", err)
	}
	return messages, total, nil
}

// MarkRead flags every message the peer sent to the user as read and returns
// how many messages changed.
func (s *MessageService) MarkRead(userID, peerID uint64) (int64, error) {
	updated, err := s.messageRepo.MarkConversationRead(userID, peerID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark messages read: %w", err)
	}
	return updated, nil
}

// UnreadCount counts unread messages addressed to the user.
func (s *MessageService) UnreadCount(userID uint64) (int64, error) {
	count, err := s.messageRepo.CountUnread(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}
