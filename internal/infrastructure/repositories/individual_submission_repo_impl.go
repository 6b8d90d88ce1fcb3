package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"snapaml.backend/internal/domain/entities"
	domainerrors "snapaml.backend/internal/domain/errors"
	"snapaml.backend/internal/infrastructure/models"
)

// IndividualSubmissionRepositoryImpl implements IndividualSubmissionRepository
type IndividualSubmissionRepositoryImpl struct {
	db *gorm.DB
}

func NewIndividualSubmissionRepository(db *gorm.DB) *IndividualSubmissionRepositoryImpl {
	return &IndividualSubmissionRepositoryImpl{db: db}
}

func (r *IndividualSubmissionRepositoryImpl) Upsert(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) error {
	now := time.Now()

	assignments := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		assignments[k] = v
	}
	assignments["updated_at"] = now

	insert := make(map[string]interface{}, len(fields)+4)
	for k, v := range fields {
		insert[k] = v
	}
	insert["id"] = uuid.New()
	insert["user_id"] = userID
	insert["created_at"] = now
	insert["updated_at"] = now

	return r.db.WithContext(ctx).Model(&models.IndividualSubmission{}).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(assignments),
		}).
		Create(insert).Error
}

func (r *IndividualSubmissionRepositoryImpl) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.IndividualSubmission, error) {
	var m models.IndividualSubmission
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *IndividualSubmissionRepositoryImpl) toEntity(m *models.IndividualSubmission) *entities.IndividualSubmission {
	return &entities.IndividualSubmission{
		ID:     m.ID,
		UserID: m.UserID,

		FirstName:              m.FirstName,
		LastName:               m.LastName,
		DateOfBirth:            m.DateOfBirth,
		PlaceOfBirth:           m.PlaceOfBirth,
		Nationality:            m.Nationality,
		AdditionalCitizenships: m.AdditionalCitizenships,
		AddressLine1:           m.AddressLine1,
		AddressLine2:           m.AddressLine2,
		City:                   m.City,
		State:                  m.State,
		PostalCode:             m.PostalCode,
		Country:                m.Country,
		LengthOfResidence:      m.LengthOfResidence,
		ContactEmail:           m.ContactEmail,
		ContactPhone:           m.ContactPhone,

		DocumentType:   m.DocumentType,
		DocumentNumber: m.DocumentNumber,
		IssuingCountry: m.IssuingCountry,
		ExpiryDate:     m.ExpiryDate,
		DocumentRef:    m.DocumentRef,

		IsUSPerson:               m.IsUSPerson,
		TaxResidencyCountries:    m.TaxResidencyCountries,
		TaxIdentificationNumbers: m.TaxIdentificationNumbers,

		Occupation:     m.Occupation,
		Employer:       m.Employer,
		AnnualIncome:   m.AnnualIncome,
		SourceOfFunds:  m.SourceOfFunds,
		SourceOfWealth: m.SourceOfWealth,

		Step1Completed: m.Step1Completed,
		Step2Completed: m.Step2Completed,
		Step3Completed: m.Step3Completed,
		Step4Completed: m.Step4Completed,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
