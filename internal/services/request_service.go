package services

import (
	"errors"
	"fmt"

	"github.com/skillnet/skillnet-api/internal/models"
	"github.com/skillnet/skillnet-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrRequestNotFound      = errors.New("request not found")
	ErrReceiverNotFound     = errors.New("receiver not found")
	ErrSelfRequest          = errors.New("you cannot send a connection request to yourself")
	ErrDuplicateRequest     = errors.New("a pending or accepted request already connects these users")
	ErrNotReceiver          = errors.New("only the receiver of this request can respond to it")
	ErrNotSender            = errors.New("only the sender of this request can perform this action")
	ErrRequestNotPending    = errors.New("request is no longer pending")
	ErrInvalidRequestStatus = errors.New("status must be either 'accepted' or 'rejected'")
)

// RequestService handles the connection request lifecycle. Every status
// mutation runs through the transition table in the models package; the
// per-operation guards here only decide who may ask for a given transition.
type RequestService struct {
	requestRepo repository.RequestRepository
	userRepo    repository.UserRepository
}

// NewRequestService creates a new RequestService.
func NewRequestService(requestRepo repository.RequestRepository, userRepo repository.UserRepository) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
	}
}

// Create sends a new pending request from sender to receiver. A request is
// refused when one already connects the pair in either direction, so each
// user pair carries at most one live edge.
func (s *RequestService) Create(senderID, receiverID uint64) (*models.Request, error) {
	if senderID == receiverID {
		return nil, ErrSelfRequest
	}

	if _, err := s.userRepo.FindByID(receiverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReceiverNotFound
		}
		return nil, fmt.Errorf("failed to find receiver: %w", err)
	}

	if _, err := s.requestRepo.FindActiveBetween(senderID, receiverID); err == nil {
		return nil, ErrDuplicateRequest
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing requests: %w", err)
	}

	request := &models.Request{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     models.RequestStatusPending,
	}

	if err := s.requestRepo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	return request, nil
}

// Respond accepts or rejects a pending request. Only the receiver may
// respond, and only while the request is pending.
func (s *RequestService) Respond(requestID, callerID uint64, status models.RequestStatus) (*models.Request, error) {
	if status != models.RequestStatusAccepted && status != models.RequestStatusRejected {
		return nil, ErrInvalidRequestStatus
	}

	request, err := s.findRequest(requestID)
	if err != nil {
		return nil, err
	}

	if request.ReceiverID != callerID {
		return nil, ErrNotReceiver
	}

	if !request.Status.CanTransition(status) {
		return nil, ErrRequestNotPending
	}

	request.Status = status
	if err := s.requestRepo.Update(request); err != nil {
		return nil, fmt.Errorf("failed to update request: %w", err)
	}

	return request, nil
}

// Cancel withdraws a pending request. Only the sender may cancel, and
// cancellation is recorded as a rejection rather than a separate state.
func (s *RequestService) Cancel(requestID, callerID uint64) (*models.Request, error) {
	request, err := s.findRequest(requestID)
	if err != nil {
		return nil, err
	}

	if request.SenderID != callerID {
		return nil, ErrNotSender
	}

	if !request.Status.CanTransition(models.RequestStatusRejected) {
		return nil, ErrRequestNotPending
	}

	request.Status = models.RequestStatusRejected
	if err := s.requestRepo.Update(request); err != nil {
		return nil, fmt.Errorf("failed to cancel request: %w", err)
	}

	return request, nil
}

// Delete removes a request record entirely. The sender owns the record; this
// is the path the client uses both to withdraw a pending request and to drop
// an accepted connection.
func (s *RequestService) Delete(requestID, callerID uint64) error {
	request, err := s.findRequest(requestID)
	if err != nil {
		return err
	}

	if request.SenderID != callerID {
		return ErrNotSender
	}

	if err := s.requestRepo.Delete(requestID); err != nil {
		return fmt.Errorf("failed to delete request: %w", err)
	}

	return nil
}

// List returns requests involving a user, filtered by direction and status.
func (s *RequestService) List(userID uint64, direction repository.RequestDirection, status *models.RequestStatus) ([]models.Request, error) {
	requests, err := s.requestRepo.ListByUser(userID, direction, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return requests, nil
}

// ListConnections returns the accepted requests a user participates in.
func (s *RequestService) ListConnections(userID uint64) ([]models.Request, error) {
	accepted := models.RequestStatusAccepted
	requests, err := s.requestRepo.ListByUser(userID, repository.DirectionAny, &accepted)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}
	return requests, nil
}

// AreConnected reports whether an accepted request links the two users.
func (s *RequestService) AreConnected(userA, userB uint64) (bool, error) {
	request, err := s.requestRepo.FindActiveBetween(userA, userB)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check connection: %w", err)
	}
	return request.Status == models.RequestStatusAccepted, nil
}

func (s *RequestService) findRequest(requestID uint64) (*models.Request, error) {
	request, err := s.requestRepo.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to find request: %w", err)
	}
	return request, nil
}
