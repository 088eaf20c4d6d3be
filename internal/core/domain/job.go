package domain

import (
	"errors"
	"time"
)

// JobStatus represents the lifecycle state of an ingestion job.
type JobStatus string

const (
	JobPending    JobStatus = "pending"
	JobInProgress JobStatus = "in_progress"
	JobCompleted  JobStatus = "completed"
	JobFailed     JobStatus = "failed"
)

// validTransitions defines the allowed state machine transitions.
// Completed and failed are terminal: no outgoing edges.
var validTransitions = map[JobStatus][]JobStatus{
	JobPending:    {JobInProgress},
	JobInProgress: {JobCompleted, JobFailed},
}

var ErrJobNotFound = errors.New("ingestion job not found")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrEmptySource = errors.New("source must not be empty")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the status admits no further transitions.
func (s JobStatus) Terminal() bool {
	return len(validTransitions[s]) == 0
}

// IngestionJob tracks a single ingestion request by status only; the actual
// ingestion payload is handled outside this service.
type IngestionJob struct {
	ID        string     `json:"id"`
	Source    string     `json:"source"`
	Status    JobStatus  `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
