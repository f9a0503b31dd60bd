package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskdeck/task-api/internal/core/domain"
	"github.com/taskdeck/task-api/internal/core/ports"
	"github.com/taskdeck/task-api/internal/core/token"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	hasher *PasswordHasher
	tokens *token.Service
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher *PasswordHasher, tokens *token.Service, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates a new account. The FindByEmail pre-check is advisory:
// the store's unique index on email is the authoritative guard, and a
// duplicate-key failure from Create also surfaces as ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, email, fullName, password string) (*domain.User, error) {
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login authenticates by email and password and returns a signed token.
// An unknown email and a wrong password both return ErrInvalidCredentials
// so callers cannot probe which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Debug().Msg("login rejected: unknown email")
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.Debug().Str("user_id", user.ID).Msg("login rejected: bad password")
		return "", domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return signed, nil
}
