package domain

import "testing"

func TestJobStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    JobStatus
		to      JobStatus
		allowed bool
	}{
		{JobPending, JobInProgress, true},
		{JobInProgress, JobCompleted, true},
		{JobInProgress, JobFailed, true},
		{JobPending, JobCompleted, false},
		{JobPending, JobFailed, false},
		{JobCompleted, JobInProgress, false},
		{JobCompleted, JobFailed, false},
		{JobFailed, JobCompleted, false},
		{JobFailed, JobInProgress, false},
		{JobInProgress, JobPending, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestJobStatus_Terminal(t *testing.T) {
	if !JobCompleted.Terminal() || !JobFailed.Terminal() {
		t.Fatalf("completed and failed must be terminal")
	}
	if JobPending.Terminal() || JobInProgress.Terminal() {
		t.Fatalf("pending and in_progress must not be terminal")
	}
}
