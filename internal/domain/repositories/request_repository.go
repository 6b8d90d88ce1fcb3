package repositories

import (
	"context"

	"github.com/google/uuid"
	"snapaml.backend/internal/domain/entities"
)

// VerificationRequestRepository persists verification requests.
type VerificationRequestRepository interface {
	Create(ctx context.Context, req *entities.VerificationRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.VerificationRequest, error)
	// ListPendingByRegistrationNumber returns pending requests addressed to
	// the given registration number, newest first.
	ListPendingByRegistrationNumber(ctx context.Context, registrationNumber string) ([]entities.VerificationRequest, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]entities.VerificationRequest, error)
	HasPending(ctx context.Context, requesterID uuid.UUID, registrationNumber string) (bool, error)
	// Approve flips the request to approved and records the approving user.
	Approve(ctx context.Context, id uuid.UUID, approverID uuid.UUID) error
}

// ApprovedRelationshipRepository persists the grants derived from approvals.
type ApprovedRelationshipRepository interface {
	Create(ctx context.Context, rel *entities.ApprovedRelationship) error
	Exists(ctx context.Context, requesterID, approverID uuid.UUID, registrationNumber string) (bool, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]entities.ApprovedRelationship, error)
}
