package voxa

import (
	"testing"
	"time"
)

func TestRetryPolicyDelaySchedule(t *testing.T) {
	p := DefaultRetryPolicy(5)

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 1 * time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 4 * time.Second}, // clamped to the last entry
		{10, 4 * time.Second},
	}
	for _, tt := range tests {
		if got := p.Delay(tt.attempt, ""); got != tt.want {
			t.Errorf("Delay(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestRetryPolicyDelayRetryAfter(t *testing.T) {
	p := DefaultRetryPolicy(3)

	tests := []struct {
		header string
		want   time.Duration
	}{
		{"0.01", 10 * time.Millisecond},
		{"2", 2 * time.Second},
		{"1.5", 1500 * time.Millisecond},
		{"garbage", 1 * time.Second}, // unparsable falls back to the schedule
		{"-3", 1 * time.Second},      // negative falls back to the schedule
	}
	for _, tt := range tests {
		if got := p.Delay(0, tt.header); got != tt.want {
			t.Errorf("Delay(0, %q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}

func TestRetryPolicyShouldRetry(t *testing.T) {
	p := DefaultRetryPolicy(2)

	tests := []struct {
		name             string
		attempt          int
		status           int
		transportFailure bool
		want             bool
	}{
		{"transport failure within budget", 0, 0, true, true},
		{"transport failure at budget", 2, 0, true, false},
		{"retryable status within budget", 1, 500, false, true},
		{"retryable status 503", 0, 503, false, true},
		{"non-retryable 400", 0, 400, false, false},
		{"non-retryable 401", 0, 401, false, false},
		{"retryable status at budget", 2, 429, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ShouldRetry(tt.attempt, tt.status, tt.transportFailure); got != tt.want {
				t.Errorf("ShouldRetry(%d, %d, %v) = %v, want %v",
					tt.attempt, tt.status, tt.transportFailure, got, tt.want)
			}
		})
	}
}

func TestRetryPolicyRetryableStatuses(t *testing.T) {
	p := DefaultRetryPolicy(1)
	for _, status := range []int{429, 500, 502, 503, 504} {
		if !p.RetryableStatus(status) {
			t.Errorf("RetryableStatus(%d) = false, want true", status)
		}
	}
	for _, status := range []int{200, 204, 400, 401, 402, 404, 501} {
		if p.RetryableStatus(status) {
			t.Errorf("RetryableStatus(%d) = true, want false", status)
		}
	}
}

func TestRetryPolicyCustomSchedule(t *testing.T) {
	p := RetryPolicy{
		MaxRetries:        1,
		Backoff:           []time.Duration{5 * time.Millisecond},
		RetryableStatuses: []int{500},
	}
	if p.RetryableStatus(429) {
		t.Error("custom policy should not retry 429")
	}
	if got := p.Delay(7, ""); got != 5*time.Millisecond {
		t.Errorf("Delay(7) = %v, want 5ms", got)
	}
}
