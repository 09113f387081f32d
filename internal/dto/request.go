package dto

import (
	"time"

	"github.com/skillnet/skillnet-api/internal/models"
)

// RequestDTO represents a connection request in API responses
type RequestDTO struct {
	ID         uint64               `json:"id"`
	SenderID   uint64               `json:"sender_id"`
	ReceiverID uint64               `json:"receiver_id"`
	Status     models.RequestStatus `json:"status"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
	Sender     *UserDTO             `json:"sender,omitempty"`
	Receiver   *UserDTO             `json:"receiver,omitempty"`
}

// ToRequestDTO converts a Request model to RequestDTO
func ToRequestDTO(request models.Request) RequestDTO {
	dto := RequestDTO{
		ID:         request.ID,
		SenderID:   request.SenderID,
		ReceiverID: request.ReceiverID,
		Status:     request.Status,
		CreatedAt:  request.CreatedAt,
		UpdatedAt:  request.UpdatedAt,
	}

	// Include endpoints if preloaded
	if request.Sender.ID != 0 {
		sender := ToUserDTO(request.Sender)
		dto.Sender = &sender
	}
	if request.Receiver.ID != 0 {
		receiver := ToUserDTO(request.Receiver)
		dto.Receiver = &receiver
	}

	return dto
}

// ToRequestDTOs converts a slice of requests
func ToRequestDTOs(requests []models.Request) []RequestDTO {
	dtos := make([]RequestDTO, len(requests))
	for i, request := range requests {
		dtos[i] = ToRequestDTO(request)
	}
	return dtos
}
