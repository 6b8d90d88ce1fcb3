package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"snapaml.backend/internal/domain/entities"
	domainerrors "snapaml.backend/internal/domain/errors"
	"snapaml.backend/internal/infrastructure/models"
)

// RiskProfileRepositoryImpl implements RiskProfileRepository
type RiskProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewRiskProfileRepository(db *gorm.DB) *RiskProfileRepositoryImpl {
	return &RiskProfileRepositoryImpl{db: db}
}

func (r *RiskProfileRepositoryImpl) GetBySubmissionID(ctx context.Context, submissionID uuid.UUID) (*entities.CompanyRiskProfile, error) {
	var m models.CompanyRiskProfile
	if err := r.db.WithContext(ctx).Where("submission_id = ?", submissionID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	return &entities.CompanyRiskProfile{
		ID:                 m.ID,
		SubmissionID:       m.SubmissionID,
		RegistrationNumber: m.RegistrationNumber,

		CompanyName:      m.CompanyName,
		LegalForm:        m.LegalForm,
		Address:          m.Address,
		City:             m.City,
		RegistrationDate: m.RegistrationDate,
		SEPA:             m.SEPA,

		IsActive:             m.IsActive,
		IsPEP:                m.IsPEP,
		IsSanctioned:         m.IsSanctioned,
		SanctionsMatch:       m.SanctionsMatch,
		HasInsolvency:        m.HasInsolvency,
		HasInsolvencyHistory: m.HasInsolvencyHistory,
		VIESValid:            m.VIESValid,

		RiskLevel:             m.RiskLevel,
		OverallRiskLevel:      m.OverallRiskLevel,
		TaxRating:             m.TaxRating,
		AdverseMediaMentions:  m.AdverseMediaMentions,
		AdverseMediaRiskScore: m.AdverseMediaRiskScore,

		CheckedAt: m.CheckedAt,
	}, nil
}
