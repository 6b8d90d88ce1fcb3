package repositories

import (
	"context"

	"github.com/google/uuid"
	"snapaml.backend/internal/domain/entities"
)

// UserRepository defines user data access
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	UpdateKYCStatus(ctx context.Context, id uuid.UUID, status entities.KYCStatus) error
	MarkEmailVerified(ctx context.Context, id uuid.UUID) error
}

// EmailVerificationRepository stores one-shot email verification tokens
type EmailVerificationRepository interface {
	Create(ctx context.Context, userID uuid.UUID, token string) error
	GetUserIDByToken(ctx context.Context, token string) (uuid.UUID, error)
	MarkVerified(ctx context.Context, token string) error
}
