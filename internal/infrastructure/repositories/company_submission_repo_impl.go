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

// CompanySubmissionRepositoryImpl implements CompanySubmissionRepository
type CompanySubmissionRepositoryImpl struct {
	db *gorm.DB
}

func NewCompanySubmissionRepository(db *gorm.DB) *CompanySubmissionRepositoryImpl {
	return &CompanySubmissionRepositoryImpl{db: db}
}

// Upsert inserts the user's submission row or, if one exists, updates only
// the given columns. Columns not named in fields keep their stored values.
func (r *CompanySubmissionRepositoryImpl) Upsert(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) error {
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

	return r.db.WithContext(ctx).Model(&models.CompanySubmission{}).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(assignments),
		}).
		Create(insert).Error
}

func (r *CompanySubmissionRepositoryImpl) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.CompanySubmission, error) {
	var m models.CompanySubmission
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByRegistrationNumber matches case-insensitively so lookups work no
// matter how the number was typed at registration.
func (r *CompanySubmissionRepositoryImpl) GetByRegistrationNumber(ctx context.Context, registrationNumber string) (*entities.CompanySubmission, error) {
	var m models.CompanySubmission
	err := r.db.WithContext(ctx).
		Where("LOWER(company_registration_number) = LOWER(?)", registrationNumber).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ExistsCompleted reports whether a finalized submission carries the given
// registration number.
func (r *CompanySubmissionRepositoryImpl) ExistsCompleted(ctx context.Context, registrationNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CompanySubmission{}).
		Where("LOWER(company_registration_number) = LOWER(?) AND completed_at IS NOT NULL", registrationNumber).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CompanySubmissionRepositoryImpl) UpdateFields(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) error {
	updates := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		updates[k] = v
	}
	updates["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).Model(&models.CompanySubmission{}).
		Where("user_id = ?", userID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *CompanySubmissionRepositoryImpl) toEntity(m *models.CompanySubmission) *entities.CompanySubmission {
	return &entities.CompanySubmission{
		ID:     m.ID,
		UserID: m.UserID,

		CompanyName:               m.CompanyName,
		TradesUnderDifferentName:  m.TradesUnderDifferentName,
		TradingName:               m.TradingName,
		CompanyRegistrationNumber: m.CompanyRegistrationNumber,
		CompanyRegistrationDate:   m.CompanyRegistrationDate,
		EntityType:                m.EntityType,
		WebsiteOrBusinessChannel:  m.WebsiteOrBusinessChannel,
		CountryOfRegistration:     m.CountryOfRegistration,

		Industry:        m.Industry,
		SubIndustry:     m.SubIndustry,
		GoodsOrServices: m.GoodsOrServices,

		IncomingPaymentsMonthlyEuro: m.IncomingPaymentsMonthlyEuro,
		IncomingPaymentCountries:    m.IncomingPaymentCountries,
		IncomingTransactionAmount:   m.IncomingTransactionAmount,
		OutgoingPaymentsMonthlyEuro: m.OutgoingPaymentsMonthlyEuro,
		OutgoingPaymentCountries:    m.OutgoingPaymentCountries,
		OutgoingTransactionAmount:   m.OutgoingTransactionAmount,

		ApplicantFirstName: m.ApplicantFirstName,
		ApplicantLastName:  m.ApplicantLastName,
		ApplicantEmail:     m.ApplicantEmail,

		Status:         entities.SubmissionStatus(m.Status),
		Step1Completed: m.Step1Completed,
		Step2Completed: m.Step2Completed,
		Step3Completed: m.Step3Completed,
		Step4Completed: m.Step4Completed,
		CompletedAt:    m.CompletedAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
