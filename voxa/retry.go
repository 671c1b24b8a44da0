package voxa

import (
	"strconv"
	"time"
)

// Defaults used by DefaultRetryPolicy.
var (
	DefaultBackoff           = []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
	DefaultRetryableStatuses = []int{429, 500, 502, 503, 504}
)

// RetryPolicy decides whether a failed attempt may be retried and how long
// to wait before the next one. It performs no sleeping itself; the executor
// owns the suspension. Both the schedule and the retryable-status set are
// parameters so tests can substitute accelerated schedules.
type RetryPolicy struct {
	// MaxRetries is the retry budget beyond the first attempt.
	MaxRetries int
	// Backoff is the per-attempt delay schedule, indexed by attempt and
	// clamped to its last entry.
	Backoff []time.Duration
	// RetryableStatuses are the HTTP statuses worth another attempt.
	RetryableStatuses []int
}

// DefaultRetryPolicy returns the standard policy with the given budget.
func DefaultRetryPolicy(maxRetries int) RetryPolicy {
	return RetryPolicy{
		MaxRetries:        maxRetries,
		Backoff:           DefaultBackoff,
		RetryableStatuses: DefaultRetryableStatuses,
	}
}

// RetryableStatus reports whether a response status is worth retrying.
func (p RetryPolicy) RetryableStatus(status int) bool {
	for _, s := range p.RetryableStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ShouldRetry reports whether another attempt may follow attempt i
// (0-indexed). Transport-level failures are always retryable; HTTP responses
// only when their status is in the retryable set.
func (p RetryPolicy) ShouldRetry(attempt, status int, transportFailure bool) bool {
	if attempt >= p.MaxRetries {
		return false
	}
	if transportFailure {
		return true
	}
	return p.RetryableStatus(status)
}

// Delay returns the wait before the attempt following attempt i. A
// Retry-After header value (seconds, possibly fractional) overrides the
// schedule; transport failures carry no header and always use the schedule.
// An unparsable header falls back to the schedule rather than erroring.
func (p RetryPolicy) Delay(attempt int, retryAfter string) time.Duration {
	if retryAfter != "" {
		if secs, err := strconv.ParseFloat(retryAfter, 64); err == nil && secs >= 0 {
			return time.Duration(secs * float64(time.Second))
		}
	}
	if len(p.Backoff) == 0 {
		return 0
	}
	if attempt >= len(p.Backoff) {
		attempt = len(p.Backoff) - 1
	}
	return p.Backoff[attempt]
}
