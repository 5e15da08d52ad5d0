// Package account implements login, registration and user profile updates.
package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/upb/blog-api/auth"
	"github.com/upb/blog-api/models"
	"github.com/upb/blog-api/repositories"
	"github.com/upb/blog-api/services"
	"go.uber.org/zap"
)

// TokenSigner issues access tokens for authenticated users
type TokenSigner interface {
	Sign(user *models.User) (string, error)
}

// AuthResult is the body returned by login and register
type AuthResult struct {
	User  models.UserSummary `json:"user"`
	Token string             `json:"token"`
}

// AuthService handles credential checks and account creation
type AuthService struct {
	users  repositories.UserRepository
	hasher auth.Hasher
	tokens TokenSigner
	logger *zap.Logger
}

// NewAuthService creates a new AuthService instance
func NewAuthService(users repositories.UserRepository, hasher auth.Hasher, tokens TokenSigner, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// Login verifies credentials and issues a token.
// Unknown email and wrong password return the same error.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrInvalidCredentials
		}
		return nil, services.WrapInternal("failed to find user", err)
	}

	if !s.hasher.Compare(req.Password, user.PasswordHash) {
		s.logger.Debug("login rejected", zap.String("user_id", user.ID.String()))
		return nil, services.ErrInvalidCredentials
	}

	return s.issue(user)
}

// Register creates an account and issues a token
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*AuthResult, error) {
	_, err := s.users.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, services.ErrUserExists
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, services.WrapInternal("failed to check existing user", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		if auth.IsHashTooLong(err) {
			return nil, services.ErrPasswordTooLong
		}
		return nil, services.WrapInternal("failed to hash password", err)
	}

	user := models.NewUser(req.Name, req.Email, hash)
	if err := s.users.Create(ctx, user); err != nil {
		// lost the race against a concurrent registration
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, services.ErrUserExists
		}
		return nil, services.WrapInternal("failed to create user", err)
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID.String()))

	return s.issue(user)
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, err := s.tokens.Sign(user)
	if err != nil {
		return nil, services.WrapInternal("failed to sign token", err)
	}
	return &AuthResult{User: user.Summary(), Token: token}, nil
}

// UserService reads and updates user profiles
type UserService struct {
	users  repositories.UserRepository
	logger *zap.Logger
}

// NewUserService creates a new UserService instance
func NewUserService(users repositories.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger,
	}
}

// GetByID returns a user by id
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrItemNotFound
		}
		return nil, services.WrapInternal("failed to get user", err)
	}
	return user, nil
}

// UpdateName changes a user's display name
func (s *UserService) UpdateName(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (*models.User, error) {
	user, err := s.users.UpdateName(ctx, id, req.Name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrItemNotFound
		}
		return nil, services.WrapInternal("failed to update user", err)
	}

	s.logger.Info("user updated", zap.String("user_id", id.String()))
	return user, nil
}
