package ports

import (
	"context"

	"github.com/docuvault/ingestion-platform/internal/core/domain"
)

// DocumentRepository defines persistence operations for document metadata.
// FindByID and FindAll must exclude soft-deleted records.
type DocumentRepository interface {
	Insert(ctx context.Context, doc *domain.Document) (*domain.Document, error)
	FindByID(ctx context.Context, id string) (*domain.Document, error)
	FindAll(ctx context.Context) ([]*domain.Document, error)
	Update(ctx context.Context, doc *domain.Document) (*domain.Document, error)
}
