package ports

import (
	"context"

	"github.com/docuvault/ingestion-platform/internal/core/domain"
)

// CreateDocumentInput carries the metadata recorded for an uploaded file.
// The file bytes are stored by the upload layer; FilePath is where it put them.
type CreateDocumentInput struct {
	Title       string
	Description string
	FilePath    string
	UploadedBy  string
}

// UpdateDocumentInput is a partial patch; nil fields are left untouched.
type UpdateDocumentInput struct {
	Title       *string
	Description *string
}

// DocumentService covers document metadata CRUD with soft deletion.
type DocumentService interface {
	Create(ctx context.Context, input CreateDocumentInput) (*domain.Document, error)
	Get(ctx context.Context, id string) (*domain.Document, error)
	List(ctx context.Context) ([]*domain.Document, error)
	Update(ctx context.Context, id string, patch UpdateDocumentInput) (*domain.Document, error)
	Delete(ctx context.Context, id string) error
}
