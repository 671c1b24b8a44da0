package voxa

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// JobStatus is the lifecycle state of an async generation job.
type JobStatus string

const (
	JobPending    JobStatus = "pending"
	JobProcessing JobStatus = "processing"
	JobCompleted  JobStatus = "completed"
	JobFailed     JobStatus = "failed"
)

// Terminal reports whether no further transition can occur.
func (s JobStatus) Terminal() bool {
	return s == JobCompleted || s == JobFailed
}

// Job is an async generation job as reported by the API. Polling replaces
// the local copy wholesale with the latest response.
type Job struct {
	ID               string    `json:"id"`
	Status           JobStatus `json:"status"`
	EstimatedSeconds float64   `json:"estimated_seconds,omitempty"`
	AudioURL         string    `json:"audio_url,omitempty"`
	Error            string    `json:"error,omitempty"`
}

// waitForTerminal polls fetch at a fixed interval until the job leaves
// {pending, processing}. The loop is unbounded unless maxWait > 0, matching
// the service's own semantics. A failed job becomes an invalid_request error
// carrying the job's error field.
func waitForTerminal(
	ctx context.Context,
	job *Job,
	interval, maxWait time.Duration,
	logger *slog.Logger,
	fetch func(context.Context, string) (*Job, error),
) (*Job, error) {
	var deadline time.Time
	if maxWait > 0 {
		deadline = time.Now().Add(maxWait)
	}

	for !job.Status.Terminal() {
		if !deadline.IsZero() && time.Now().After(deadline) {
			return nil, &APIError{
				Kind:    ErrNetwork,
				Code:    "poll_timeout",
				Message: fmt.Sprintf("job %s did not reach a terminal status within %s", job.ID, maxWait),
			}
		}
		if err := sleep(ctx, interval); err != nil {
			return nil, err
		}
		next, err := fetch(ctx, job.ID)
		if err != nil {
			return nil, err
		}
		job = next
		logger.Debug("polled job", "job_id", job.ID, "status", job.Status)
	}

	if job.Status == JobFailed {
		msg := job.Error
		if msg == "" {
			msg = "Async job failed"
		}
		return nil, &APIError{Kind: ErrInvalidRequest, Code: "job_failed", Message: msg}
	}
	return job, nil
}
