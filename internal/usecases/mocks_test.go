package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"snapaml.backend/internal/domain/entities"
)

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateKYCStatus(ctx context.Context, id uuid.UUID, status entities.KYCStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockUserRepository) MarkEmailVerified(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock EmailVerificationRepository
type MockEmailVerificationRepository struct {
	mock.Mock
}

func (m *MockEmailVerificationRepository) Create(ctx context.Context, userID uuid.UUID, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *MockEmailVerificationRepository) GetUserIDByToken(ctx context.Context, token string) (uuid.UUID, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockEmailVerificationRepository) MarkVerified(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// Mock CompanySubmissionRepository
type MockCompanySubmissionRepository struct {
	mock.Mock
}

func (m *MockCompanySubmissionRepository) Upsert(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, userID, fields)
	return args.Error(0)
}

func (m *MockCompanySubmissionRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.CompanySubmission, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CompanySubmission), args.Error(1)
}

func (m *MockCompanySubmissionRepository) GetByRegistrationNumber(ctx context.Context, registrationNumber string) (*entities.CompanySubmission, error) {
	args := m.Called(ctx, registrationNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CompanySubmission), args.Error(1)
}

func (m *MockCompanySubmissionRepository) ExistsCompleted(ctx context.Context, registrationNumber string) (bool, error) {
	args := m.Called(ctx, registrationNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockCompanySubmissionRepository) UpdateFields(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, userID, fields)
	return args.Error(0)
}

// Mock IndividualSubmissionRepository
type MockIndividualSubmissionRepository struct {
	mock.Mock
}

func (m *MockIndividualSubmissionRepository) Upsert(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, userID, fields)
	return args.Error(0)
}

func (m *MockIndividualSubmissionRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.IndividualSubmission, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.IndividualSubmission), args.Error(1)
}

// Mock VerificationRequestRepository
type MockVerificationRequestRepository struct {
	mock.Mock
}

func (m *MockVerificationRequestRepository) Create(ctx context.Context, req *entities.VerificationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockVerificationRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.VerificationRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.VerificationRequest), args.Error(1)
}

func (m *MockVerificationRequestRepository) ListPendingByRegistrationNumber(ctx context.Context, registrationNumber string) ([]entities.VerificationRequest, error) {
	args := m.Called(ctx, registrationNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.VerificationRequest), args.Error(1)
}

func (m *MockVerificationRequestRepository) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]entities.VerificationRequest, error) {
	args := m.Called(ctx, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.VerificationRequest), args.Error(1)
}

func (m *MockVerificationRequestRepository) HasPending(ctx context.Context, requesterID uuid.UUID, registrationNumber string) (bool, error) {
	args := m.Called(ctx, requesterID, registrationNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockVerificationRequestRepository) Approve(ctx context.Context, id uuid.UUID, approverID uuid.UUID) error {
	args := m.Called(ctx, id, approverID)
	return args.Error(0)
}

// Mock ApprovedRelationshipRepository
type MockApprovedRelationshipRepository struct {
	mock.Mock
}

func (m *MockApprovedRelationshipRepository) Create(ctx context.Context, rel *entities.ApprovedRelationship) error {
	args := m.Called(ctx, rel)
	return args.Error(0)
}

func (m *MockApprovedRelationshipRepository) Exists(ctx context.Context, requesterID, approverID uuid.UUID, registrationNumber string) (bool, error) {
	args := m.Called(ctx, requesterID, approverID, registrationNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockApprovedRelationshipRepository) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]entities.ApprovedRelationship, error) {
	args := m.Called(ctx, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ApprovedRelationship), args.Error(1)
}

// Mock RiskProfileRepository
type MockRiskProfileRepository struct {
	mock.Mock
}

func (m *MockRiskProfileRepository) GetBySubmissionID(ctx context.Context, submissionID uuid.UUID) (*entities.CompanyRiskProfile, error) {
	args := m.Called(ctx, submissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CompanyRiskProfile), args.Error(1)
}

// Mock DocumentStore
type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Put(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, objectName, contentType, data)
	return args.String(0), args.Error(1)
}
