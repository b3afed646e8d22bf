package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/JoanixX/high-concurrency-api/internal/core/domain"
	"github.com/JoanixX/high-concurrency-api/internal/core/ports"
)

// AuthService implements registration and login on top of the user
// repository and password hasher ports.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, logger: logger}
}

// Register validates the credentials, hashes the password and persists a new
// account. The email check is deliberately minimal (non-empty, contains '@');
// full RFC validation stays out of the core. A uniqueness conflict on the
// email surfaces as KindDuplicate.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*ports.RegisterResult, error) {
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.Validation("invalid email")
	}
	if len(password) < 8 {
		return nil, domain.Validation("password must be at least 8 characters")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	userID := uuid.NewString()
	if err := s.repo.Save(ctx, userID, email, hash, name); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Msg("user registered")

	return &ports.RegisterResult{UserID: userID}, nil
}

// Login verifies credentials. An unknown email and a wrong password both
// yield ErrAuthenticationFailed so callers cannot probe account existence.
// A malformed stored hash surfaces as KindInternal.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	record, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrAuthenticationFailed
	}

	ok, err := s.hasher.Verify(password, record.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrAuthenticationFailed
	}

	s.logger.Info().Str("user_id", record.ID).Msg("login succeeded")

	return &ports.LoginResult{UserID: record.ID, Name: record.Name}, nil
}
