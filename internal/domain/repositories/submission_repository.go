package repositories

import (
	"context"

	"github.com/google/uuid"
	"snapaml.backend/internal/domain/entities"
)

// CompanySubmissionRepository persists KYB submissions. Upsert is keyed on
// user_id: the first write inserts the row, later writes update only the
// columns named in fields.
type CompanySubmissionRepository interface {
	Upsert(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.CompanySubmission, error)
	GetByRegistrationNumber(ctx context.Context, registrationNumber string) (*entities.CompanySubmission, error)
	ExistsCompleted(ctx context.Context, registrationNumber string) (bool, error)
	UpdateFields(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) error
}

// IndividualSubmissionRepository persists KYC submissions, keyed on user_id
// the same way as company submissions.
type IndividualSubmissionRepository interface {
	Upsert(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.IndividualSubmission, error)
}
