package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"snapaml.backend/internal/domain/entities"
	domainerrors "snapaml.backend/internal/domain/errors"
	"snapaml.backend/internal/domain/repositories"
	"snapaml.backend/pkg/crypto"
	"snapaml.backend/pkg/jwt"
	"snapaml.backend/pkg/utils"
)

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo       repositories.UserRepository
	emailVerifRepo repositories.EmailVerificationRepository
	jwtService     *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	emailVerifRepo repositories.EmailVerificationRepository,
	jwtService *jwt.JWTService,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:       userRepo,
		emailVerifRepo: emailVerifRepo,
		jwtService:     jwtService,
	}
}

// Register registers a new user and returns the email verification token
func (u *AuthUsecase) Register(ctx context.Context, input *entities.CreateUserInput) (*entities.User, string, error) {
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Name) == "" || input.Password == "" {
		return nil, "", domainerrors.Validation("email, name and password are required")
	}

	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, "", domainerrors.Conflict("email already registered")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, "", domainerrors.Persistence(err)
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	user := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: passwordHash,
		Role:         entities.UserRoleUser,
		KYCStatus:    entities.KYCStatusNotStarted,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, "", domainerrors.Persistence(err)
	}

	token, err := crypto.GenerateVerificationToken()
	if err != nil {
		return nil, "", err
	}
	if err := u.emailVerifRepo.Create(ctx, user.ID, token); err != nil {
		return nil, "", domainerrors.Persistence(err)
	}

	return user, token, nil
}

// Login authenticates a user and returns tokens
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// VerifyEmail consumes a verification token and flags the user's email
func (u *AuthUsecase) VerifyEmail(ctx context.Context, token string) error {
	userID, err := u.emailVerifRepo.GetUserIDByToken(ctx, token)
	if err != nil {
		return err
	}

	if err := u.emailVerifRepo.MarkVerified(ctx, token); err != nil {
		return err
	}

	return u.userRepo.MarkEmailVerified(ctx, userID)
}

// RefreshToken exchanges a valid refresh token for a fresh token pair
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	// The user may have been deleted or demoted since the token was issued.
	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	return u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
