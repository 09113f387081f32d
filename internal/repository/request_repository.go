package repository

import (
	"github.com/skillnet/skillnet-api/internal/models"
	"gorm.io/gorm"
)

// GormRequestRepository is a GORM implementation of RequestRepository
type GormRequestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new RequestRepository
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &GormRequestRepository{db: db}
}

// Create creates a new request
func (r *GormRequestRepository) Create(request *models.Request) error {
	return r.db.Create(request).Error
}

// FindByID finds a request by ID with optional preloading
func (r *GormRequestRepository) FindByID(id uint64, preload ...string) (*models.Request, error) {
	var request models.Request
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&request, id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// Update persists changes to a request
func (r *GormRequestRepository) Update(request *models.Request) error {
	return r.db.Save(request).Error
}

// Delete removes a request record
func (r *GormRequestRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Request{}, id).Error
}

// FindActiveBetween finds a pending or accepted request connecting the two
// users in either direction. Rejected requests do not count: a pair may try
// again after a rejection.
func (r *GormRequestRepository) FindActiveBetween(userA, userB uint64) (*models.Request, error) {
	var request models.Request
	err := r.db.
		Where("status IN ?", []models.RequestStatus{models.RequestStatusPending, models.RequestStatusAccepted}).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// ListByUser lists requests where the user is sender, receiver, or either,
// optionally filtered by status
func (r *GormRequestRepository) ListByUser(userID uint64, direction RequestDirection, status *models.RequestStatus) ([]models.Request, error) {
	var requests []models.Request

	query := r.db.Preload("Sender").Preload("Receiver")

	switch direction {
	case DirectionIncoming:
		query = query.Where("receiver_id = ?", userID)
	case DirectionOutgoing:
		query = query.Where("sender_id = ?", userID)
	default:
		query = query.Where("sender_id = ? OR receiver_id = ?", userID, userID)
	}

	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}
