package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/docuvault/ingestion-platform/internal/core/domain"
)

const statusTTL = 30 * time.Second

// StatusCache serves repeated job status polls from Redis so they don't all
// hit the primary store. The registry writes through on every transition,
// and the short TTL bounds staleness if a write-through is lost.
// Key format: job_status:<job_id>
type StatusCache struct {
	client *redis.Client
}

// NewStatusCache creates a StatusCache wrapping the given Redis client.
func NewStatusCache(client *redis.Client) *StatusCache {
	return &StatusCache{client: client}
}

// Get returns the cached job, or (nil, nil) on a miss.
func (s *StatusCache) Get(ctx context.Context, id string) (*domain.IngestionJob, error) {
	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("status cache get: %w", err)
	}

	var job domain.IngestionJob
	if err := json.Unmarshal(raw, &job); err != nil {
		return nil, fmt.Errorf("status cache decode: %w", err)
	}
	return &job, nil
}

// Set stores the job record (expires after statusTTL).
func (s *StatusCache) Set(ctx context.Context, job *domain.IngestionJob) error {
	raw, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("status cache encode: %w", err)
	}
	return s.client.Set(ctx, s.key(job.ID), raw, statusTTL).Err()
}

func (s *StatusCache) key(id string) string {
	return fmt.Sprintf("job_status:%s", id)
}
