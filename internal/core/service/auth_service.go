package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/docuvault/ingestion-platform/internal/core/domain"
	"github.com/docuvault/ingestion-platform/internal/core/ports"
)

// AuthService implements registration, credential verification, and login.
type AuthService struct {
	repo   ports.UserRepository
	issuer ports.TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, issuer ports.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, logger: logger}
}

// Register creates a user with a hashed password and returns a freshly
// issued token bound to the new user's id and role. An omitted role defaults
// to viewer.
func (s *AuthService) Register(ctx context.Context, email, password, role string) (string, *domain.User, error) {
	if role == "" {
		role = domain.DefaultRole
	}
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(role) {
		return "", nil, domain.ErrInvalidRole
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The pre-check above is racy under concurrent registration; the
	// repository's unique email index is the authoritative guard.
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	tok, err := s.issuer.Issue(created.ID, created.Role)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return tok, created, nil
}

// Authenticate verifies the email/password pair. Unknown email and wrong
// password both map to the same ErrInvalidCredentials so the response never
// reveals which factor failed.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// Login composes Authenticate with token issuance. The token snapshots the
// user's current role; later role changes do not affect it.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	tok, err := s.issuer.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return tok, user, nil
}
