package ports

import (
	"context"

	"github.com/docuvault/ingestion-platform/internal/core/domain"
)

// IngestionRepository defines persistence operations for ingestion jobs.
type IngestionRepository interface {
	Insert(ctx context.Context, job *domain.IngestionJob) (*domain.IngestionJob, error)
	FindByID(ctx context.Context, id string) (*domain.IngestionJob, error)
	Update(ctx context.Context, job *domain.IngestionJob) (*domain.IngestionJob, error)
}
