package models

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"
)

// requestTransitions is the full transition table for the request lifecycle.
// Pending is the only non-terminal state; accepted and rejected are final.
// Cancellation is a pending→rejected transition, not a state of its own.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending: {RequestStatusAccepted, RequestStatusRejected},
}

// Valid reports whether the status is a known lifecycle state.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed from the status.
func (s RequestStatus) Terminal() bool {
	return len(requestTransitions[s]) == 0
}

// CanTransition reports whether moving from s to next is a legal transition.
// Every operation that mutates a request's status must consult this rather
// than re-deriving the guard locally.
func (s RequestStatus) CanTransition(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Request is a directed connection invitation between two users. An accepted
// request is what the rest of the system calls a connection: it gates
// messaging and rating between the pair.
type Request struct {
	ID         uint64        `gorm:"primarykey" json:"id"`
	SenderID   uint64        `gorm:"not null;index" json:"sender_id"`
	ReceiverID uint64        `gorm:"not null;index" json:"receiver_id"`
	Status     RequestStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`

	// Relations
	Sender   User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
}
