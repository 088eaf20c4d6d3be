package ports

import (
	"context"

	"github.com/docuvault/ingestion-platform/internal/core/domain"
)

// IngestionService owns the job state machine: it is the only component
// that mutates job records.
type IngestionService interface {
	// Trigger creates a job, schedules its simulated completion, and returns
	// the record already in in_progress — callers never observe pending.
	Trigger(ctx context.Context, source string) (*domain.IngestionJob, error)
	// Status is a pure read.
	Status(ctx context.Context, id string) (*domain.IngestionJob, error)
	// Fail moves an in_progress job to its failed terminal state.
	Fail(ctx context.Context, id string) (*domain.IngestionJob, error)
}
