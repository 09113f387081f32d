package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillnet/skillnet-api/internal/dto"
	apierrors "github.com/skillnet/skillnet-api/internal/errors"
	"github.com/skillnet/skillnet-api/internal/middleware"
	"github.com/skillnet/skillnet-api/internal/services"
	"github.com/skillnet/skillnet-api/internal/utils"
)

// MessageHandler serves direct messaging endpoints.
type MessageHandler struct {
	messageService *services.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

// SendMessage delivers a message to a connected user.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type SendMessageRequest struct {
		ReceiverID uint64 `json:"receiver_id" binding:"required"`
		Content    string `json:"content" binding:"required"`
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	message, err := h.messageService.Send(userID, req.ReceiverID, req.Content)
	if err != nil {
		respondMessageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMessageDTO(*message))
}

// GetConversation lists both directions of a conversation with `?with=` peer,
// oldest first. Clients poll this endpoint for updates.
func (h *MessageHandler) GetConversation(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	peerID, err := strconv.ParseUint(c.Query("with"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Query parameter 'with' must be a user id")
		return
	}

	params := utils.GetPaginationParams(c)

	messages, total, err := h.messageService.Conversation(userID, peerID, params.Page, params.Limit)
	if err != nil {
		apierrors.InternalError(c, "Failed to load conversation")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": dto.ToMessageDTOs(messages),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// MarkRead flags the peer's messages to the current user as read.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	peerID, err := strconv.ParseUint(c.Query("with"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Query parameter 'with' must be a user id")
		return
	}

	updated, err := h.messageService.MarkRead(userID, peerID)
	if err != nil {
		apierrors.InternalError(c, "Failed to mark messages read")
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// UnreadCount returns the number of unread messages for the current user.
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	count, err := h.messageService.UnreadCount(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to count unread messages")
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread": count})
}

func respondMessageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMessageContentRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotConnected):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
