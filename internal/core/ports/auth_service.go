package ports

import (
	"context"

	"github.com/docuvault/ingestion-platform/internal/core/domain"
)

// TokenIssuer signs bearer tokens binding a subject to a role snapshot.
type TokenIssuer interface {
	Issue(subject, role string) (string, error)
}

// AuthService implements registration and credential verification.
type AuthService interface {
	Register(ctx context.Context, email, password, role string) (string, *domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// UserService covers administrative operations over user records.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	UpdateRole(ctx context.Context, userID, role string) (*domain.User, error)
}
