package repositories

import (
	"context"

	"github.com/google/uuid"
	"snapaml.backend/internal/domain/entities"
)

// RiskProfileRepository reads externally produced company risk profiles.
type RiskProfileRepository interface {
	GetBySubmissionID(ctx context.Context, submissionID uuid.UUID) (*entities.CompanyRiskProfile, error)
}
