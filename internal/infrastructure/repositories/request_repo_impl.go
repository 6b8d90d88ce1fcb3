package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"snapaml.backend/internal/domain/entities"
	domainerrors "snapaml.backend/internal/domain/errors"
	"snapaml.backend/internal/infrastructure/models"
)

// VerificationRequestRepositoryImpl implements VerificationRequestRepository
type VerificationRequestRepositoryImpl struct {
	db *gorm.DB
}

func NewVerificationRequestRepository(db *gorm.DB) *VerificationRequestRepositoryImpl {
	return &VerificationRequestRepositoryImpl{db: db}
}

func (r *VerificationRequestRepositoryImpl) Create(ctx context.Context, req *entities.VerificationRequest) error {
	now := time.Now()
	m := &models.VerificationRequest{
		ID:                        req.ID,
		RequesterUserID:           req.RequesterUserID,
		RequesterEmail:            req.RequesterEmail,
		CompanyRegistrationNumber: req.CompanyRegistrationNumber,
		Status:                    string(req.Status),
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *VerificationRequestRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.VerificationRequest, error) {
	var m models.VerificationRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *VerificationRequestRepositoryImpl) ListPendingByRegistrationNumber(ctx context.Context, registrationNumber string) ([]entities.VerificationRequest, error) {
	var ms []models.VerificationRequest
	err := r.db.WithContext(ctx).
		Where("LOWER(company_registration_number) = LOWER(?) AND status = ?", registrationNumber, entities.RequestStatusPending).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	requests := make([]entities.VerificationRequest, 0, len(ms))
	for _, m := range ms {
		model := m
		requests = append(requests, *r.toEntity(&model))
	}
	return requests, nil
}

func (r *VerificationRequestRepositoryImpl) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]entities.VerificationRequest, error) {
	var ms []models.VerificationRequest
	err := r.db.WithContext(ctx).
		Where("requester_user_id = ?", requesterID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	requests := make([]entities.VerificationRequest, 0, len(ms))
	for _, m := range ms {
		model := m
		requests = append(requests, *r.toEntity(&model))
	}
	return requests, nil
}

func (r *VerificationRequestRepositoryImpl) HasPending(ctx context.Context, requesterID uuid.UUID, registrationNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.VerificationRequest{}).
		Where("requester_user_id = ? AND LOWER(company_registration_number) = LOWER(?) AND status = ?",
			requesterID, registrationNumber, entities.RequestStatusPending).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Approve flips the request to approved and records who approved it.
func (r *VerificationRequestRepositoryImpl) Approve(ctx context.Context, id uuid.UUID, approverID uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.VerificationRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":            entities.RequestStatusApproved,
			"requested_user_id": approverID.String(),
			"updated_at":        time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *VerificationRequestRepositoryImpl) toEntity(m *models.VerificationRequest) *entities.VerificationRequest {
	return &entities.VerificationRequest{
		ID:                        m.ID,
		RequesterUserID:           m.RequesterUserID,
		RequesterEmail:            m.RequesterEmail,
		RequestedUserID:           m.RequestedUserID,
		CompanyRegistrationNumber: m.CompanyRegistrationNumber,
		Status:                    entities.RequestStatus(m.Status),
		CreatedAt:                 m.CreatedAt,
		UpdatedAt:                 m.UpdatedAt,
	}
}

// ApprovedRelationshipRepositoryImpl implements ApprovedRelationshipRepository
type ApprovedRelationshipRepositoryImpl struct {
	db *gorm.DB
}

func NewApprovedRelationshipRepository(db *gorm.DB) *ApprovedRelationshipRepositoryImpl {
	return &ApprovedRelationshipRepositoryImpl{db: db}
}

func (r *ApprovedRelationshipRepositoryImpl) Create(ctx context.Context, rel *entities.ApprovedRelationship) error {
	m := &models.ApprovedRelationship{
		RequesterUserID:           rel.RequesterUserID,
		ApproverUserID:            rel.ApproverUserID,
		CompanyRegistrationNumber: rel.CompanyRegistrationNumber,
		CreatedAt:                 time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	rel.ID = m.ID
	rel.CreatedAt = m.CreatedAt
	return nil
}

func (r *ApprovedRelationshipRepositoryImpl) Exists(ctx context.Context, requesterID, approverID uuid.UUID, registrationNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ApprovedRelationship{}).
		Where("requester_user_id = ? AND approver_user_id = ? AND LOWER(company_registration_number) = LOWER(?)",
			requesterID, approverID, registrationNumber).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ApprovedRelationshipRepositoryImpl) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]entities.ApprovedRelationship, error) {
	var ms []models.ApprovedRelationship
	err := r.db.WithContext(ctx).
		Where("requester_user_id = ?", requesterID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	rels := make([]entities.ApprovedRelationship, 0, len(ms))
	for _, m := range ms {
		rels = append(rels, entities.ApprovedRelationship{
			ID:                        m.ID,
			RequesterUserID:           m.RequesterUserID,
			ApproverUserID:            m.ApproverUserID,
			CompanyRegistrationNumber: m.CompanyRegistrationNumber,
			CreatedAt:                 m.CreatedAt,
			UpdatedAt:                 m.UpdatedAt,
		})
	}
	return rels, nil
}
