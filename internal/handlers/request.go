package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillnet/skillnet-api/internal/dto"
	apierrors "github.com/skillnet/skillnet-api/internal/errors"
	"github.com/skillnet/skillnet-api/internal/middleware"
	"github.com/skillnet/skillnet-api/internal/models"
	"github.com/skillnet/skillnet-api/internal/repository"
	"github.com/skillnet/skillnet-api/internal/services"
)

// RequestHandler serves the connection request lifecycle endpoints.
type RequestHandler struct {
	requestService *services.RequestService
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(requestService *services.RequestService) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
	}
}

// CreateRequest sends a new pending connection request.
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateRequestRequest struct {
		ReceiverID uint64 `json:"receiver_id" binding:"required"`
	}

	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	request, err := h.requestService.Create(userID, req.ReceiverID)
	if err != nil {
		respondRequestError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRequestDTO(*request))
}

// ListRequests lists requests involving the current user. Supports
// `?direction=incoming|outgoing` and `?status=pending|accepted|rejected`.
func (h *RequestHandler) ListRequests(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	direction := repository.DirectionAny
	switch c.Query("direction") {
	case "incoming":
		direction = repository.DirectionIncoming
	case "outgoing":
		direction = repository.DirectionOutgoing
	case "":
	default:
		apierrors.BadRequest(c, "direction must be 'incoming' or 'outgoing'")
		return
	}

	var status *models.RequestStatus
	if raw := c.Query("status"); raw != "" {
		s := models.RequestStatus(raw)
		if !s.Valid() {
			apierrors.BadRequest(c, "Invalid status filter")
			return
		}
		status = &s
	}

	requests, err := h.requestService.List(userID, direction, status)
	if err != nil {
		apierrors.InternalError(c, "Failed to list requests")
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": dto.ToRequestDTOs(requests)})
}

// ListConnections lists the current user's accepted connections.
func (h *RequestHandler) ListConnections(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	connections, err := h.requestService.ListConnections(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to list connections")
		return
	}

	c.JSON(http.StatusOK, gin.H{"connections": dto.ToRequestDTOs(connections)})
}

// RespondToRequest accepts or rejects a pending request.
func (h *RequestHandler) RespondToRequest(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	requestID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid request id")
		return
	}

	type RespondRequest struct {
		Status models.RequestStatus `json:"status" binding:"required"`
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	request, err := h.requestService.Respond(requestID, userID, req.Status)
	if err != nil {
		respondRequestError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestDTO(*request))
}

// CancelRequest withdraws a pending request the current user sent.
func (h *RequestHandler) CancelRequest(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	requestID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid request id")
		return
	}

	request, err := h.requestService.Cancel(requestID, userID)
	if err != nil {
		respondRequestError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestDTO(*request))
}

// DeleteRequest removes a request record the current user sent.
func (h *RequestHandler) DeleteRequest(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	requestID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid request id")
		return
	}

	if err := h.requestService.Delete(requestID, userID); err != nil {
		respondRequestError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Request deleted successfully",
	})
}

func respondRequestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSelfRequest),
		errors.Is(err, services.ErrInvalidRequestStatus):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrDuplicateRequest):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrRequestNotPending):
		apierrors.UnprocessableEntity(c, err.Error())
	case errors.Is(err, services.ErrNotReceiver), errors.Is(err, services.ErrNotSender):
		apierrors.Forbidden(c, "")
	case errors.Is(err, services.ErrRequestNotFound),
		errors.Is(err, services.ErrReceiverNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
