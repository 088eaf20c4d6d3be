package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/docuvault/ingestion-platform/internal/api/metrics"
	"github.com/docuvault/ingestion-platform/internal/core/domain"
	"github.com/docuvault/ingestion-platform/internal/core/ports"
)

// StatusCache abstracts the read cache for job status polling (Redis).
// A miss returns (nil, nil); both operations are best-effort.
type StatusCache interface {
	Get(ctx context.Context, id string) (*domain.IngestionJob, error)
	Set(ctx context.Context, job *domain.IngestionJob) error
}

const completionTimeout = 10 * time.Second

// IngestionService owns the job state machine. Each triggered job gets its
// own one-shot completion timer closing over nothing but the job id — there
// is no shared timer table.
type IngestionService struct {
	repo   ports.IngestionRepository
	cache  StatusCache
	delay  time.Duration
	logger zerolog.Logger
}

// NewIngestionService creates the registry. delay is the simulated
// processing time between in_progress and completed.
func NewIngestionService(repo ports.IngestionRepository, cache StatusCache, delay time.Duration, logger zerolog.Logger) *IngestionService {
	if delay <= 0 {
		delay = 5 * time.Second
	}
	return &IngestionService{repo: repo, cache: cache, delay: delay, logger: logger}
}

// Trigger creates a job in pending, transitions it to in_progress, and
// schedules the simulated completion. The caller gets the in_progress record
// back immediately; the pending state is never observable through this call.
func (s *IngestionService) Trigger(ctx context.Context, source string) (*domain.IngestionJob, error) {
	if source == "" {
		return nil, domain.ErrEmptySource
	}

	now := time.Now().UTC()
	job := &domain.IngestionJob{
		ID:        uuid.NewString(),
		Source:    source,
		Status:    domain.JobPending,
		CreatedAt: now,
	}

	job, err := s.repo.Insert(ctx, job)
	if err != nil {
		return nil, err
	}

	job, err = s.transition(ctx, job, domain.JobInProgress)
	if err != nil {
		return nil, err
	}

	// Scheduled only after the in_progress write is durable, so the terminal
	// write can never race ahead of it for the same id.
	jobID := job.ID
	time.AfterFunc(s.delay, func() { s.complete(jobID) })

	s.logger.Info().Str("job_id", job.ID).Str("source", source).Msg("ingestion triggered")
	return job, nil
}

// Status returns the current job record, serving repeated polls from the
// cache when possible.
func (s *IngestionService) Status(ctx context.Context, id string) (*domain.IngestionJob, error) {
	if cached, err := s.cache.Get(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("job_id", id).Msg("status cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, job); err != nil {
		s.logger.Warn().Err(err).Str("job_id", id).Msg("status cache write failed")
	}
	return job, nil
}

// Fail moves an in_progress job to failed. Nothing in the current pipeline
// calls this; the transition stays reachable for a real ingestion backend.
func (s *IngestionService) Fail(ctx context.Context, id string) (*domain.IngestionJob, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, job, domain.JobFailed)
}

// complete is the delayed worker body. It re-reads the job by id before
// mutating and silently no-ops when the record is gone or already terminal:
// there is no caller context left to report to.
func (s *IngestionService) complete(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), completionTimeout)
	defer cancel()

	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrJobNotFound) {
			s.logger.Error().Err(err).Str("job_id", id).Msg("completion re-read failed")
		}
		return
	}

	if _, err := s.transition(ctx, job, domain.JobCompleted); err != nil {
		s.logger.Warn().Err(err).Str("job_id", id).Str("status", string(job.Status)).Msg("completion skipped")
		return
	}

	metrics.JobsCompletedTotal.Inc()
	metrics.JobCompletionSeconds.Observe(time.Since(job.CreatedAt).Seconds())

	s.logger.Info().Str("job_id", id).Msg("ingestion completed")
}

// transition validates the state machine edge, persists the new status, and
// writes the updated record through the cache.
func (s *IngestionService) transition(ctx context.Context, job *domain.IngestionJob, next domain.JobStatus) (*domain.IngestionJob, error) {
	if !job.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now().UTC()
	job.Status = next
	job.UpdatedAt = &now

	updated, err := s.repo.Update(ctx, job)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, updated); err != nil {
		s.logger.Warn().Err(err).Str("job_id", job.ID).Msg("status cache write failed")
	}
	return updated, nil
}
