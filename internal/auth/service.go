package auth

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"storefront/internal/domain"
	apperrors "storefront/internal/errors"
)

const msgInvalidCredentials = "Invalid credentials"

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, u domain.User) (int64, error)
}

type TokenIssuer interface {
	Issue(user domain.User) (string, error)
}

type Service struct {
	users  UserRepository
	tokens TokenIssuer
	logger *zap.Logger
}

func NewService(users UserRepository, tokens TokenIssuer, logger *zap.Logger) *Service {
	return &Service{users: users, tokens: tokens, logger: logger}
}

// Login exchanges credentials for an access token. Unknown email and wrong
// password produce the same error.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", apperrors.NewValidationError("Missing credentials")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return "", apperrors.NewUnauthorizedError(msgInvalidCredentials)
		}
		return "", apperrors.NewInternalError("Login failed", err)
	}

	ok, err := CheckPassword(user.PasswordHash, password)
	if err != nil {
		s.logger.Warn("stored password hash unusable", zap.Int64("userId", user.ID), zap.Error(err))
		return "", apperrors.NewUnauthorizedError(msgInvalidCredentials)
	}
	if !ok {
		return "", apperrors.NewUnauthorizedError(msgInvalidCredentials)
	}

	return s.tokens.Issue(*user)
}

// EnsureAdmin creates an admin account unless the email is already taken. It
// reports whether a user was created.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		if !existing.IsAdmin() {
			s.logger.Warn("bootstrap email belongs to a non-admin user", zap.String("email", email))
		}
		return false, nil
	}
	if _, ok := apperrors.IsNotFoundError(err); !ok {
		return false, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return false, err
	}

	id, err := s.users.Insert(ctx, domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return false, err
	}

	s.logger.Info("admin user created", zap.Int64("userId", id), zap.String("email", email))
	return true, nil
}
