package ports

import (
	"context"

	"github.com/docuvault/ingestion-platform/internal/core/domain"
)

// UserRepository defines the interface for user persistence. Implementations
// must support exact-match lookup by email and by id, and are expected to
// enforce email uniqueness at the storage layer (duplicate inserts surface
// as domain.ErrUserExists).
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}
