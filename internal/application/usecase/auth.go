package usecase

import (
	"context"
	"errors"

	"lmsplatform/internal/domain"
	"lmsplatform/internal/infrastructure/security"

	"github.com/google/uuid"
)

type AuthUseCase struct {
	users        UserRepository
	hasher       *security.PasswordHasher
	tokenManager *security.TokenManager
}

func NewAuthUseCase(users UserRepository, hasher *security.PasswordHasher, tokenManager *security.TokenManager) *AuthUseCase {
	return &AuthUseCase{
		users:        users,
		hasher:       hasher,
		tokenManager: tokenManager,
	}
}

// Register creates a new account. The very first account in the system
// becomes an admin; everyone after that starts as a regular user.
func (uc *AuthUseCase) Register(ctx context.Context, username, password string) (*domain.User, error) {
	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	count, err := uc.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		IsAdmin:      count == 0,
	}

	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	if err := uc.hasher.Compare(user.PasswordHash, password); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	return uc.tokenManager.Generate(user.ID, user.IsAdmin)
}

func (uc *AuthUseCase) Me(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return uc.users.GetByID(ctx, userID)
}

// Promote grants the admin role to the named user. Only reachable through
// the admin-guarded route group.
func (uc *AuthUseCase) Promote(ctx context.Context, targetUsername string) error {
	return uc.users.SetAdmin(ctx, targetUsername)
}
