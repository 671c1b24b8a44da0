// Package voxa is the Go client for the Voxa text-to-speech API.
//
// All calls run through one retry loop with per-attempt deadlines and a
// typed error taxonomy (*APIError). Construct a Client once and share it;
// its configuration is immutable and safe for concurrent use.
package voxa

import (
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// Defaults applied by New for zero-valued Config fields.
const (
	DefaultBaseURL      = "https://api.voxa.ai"
	DefaultTimeout      = 30 * time.Second
	DefaultMaxRetries   = 3
	DefaultPollInterval = 2 * time.Second
)

// Config holds client construction parameters. It is read once by New;
// later mutation has no effect.
type Config struct {
	// APIKey is the bearer credential. Required.
	APIKey string
	// BaseURL of the API, without a trailing slash.
	BaseURL string
	// Timeout bounds each individual attempt, not the whole call.
	Timeout time.Duration
	// MaxRetries is the retry budget beyond the first attempt.
	MaxRetries int
	// PollInterval is the fixed sleep between async job polls.
	PollInterval time.Duration
	// MaxPollDuration caps the poll loop. 0 (the default) means unbounded,
	// matching the service's own semantics.
	MaxPollDuration time.Duration
	// Retry overrides the full retry policy (schedule and retryable-status
	// set). When set, MaxRetries is ignored.
	Retry *RetryPolicy
	// HTTPClient overrides the underlying client. Its Timeout should stay
	// zero; attempts carry their own deadlines.
	HTTPClient *http.Client
	// Logger receives debug logs for retries and poll cycles.
	Logger *slog.Logger
}

// Client talks to the Voxa API. Resource access goes through the service
// fields; all of them share the same transport and retry policy.
type Client struct {
	transport    *transport
	retry        RetryPolicy
	logger       *slog.Logger
	pollInterval time.Duration
	maxPollWait  time.Duration

	Voices      *VoicesService
	Files       *FilesService
	Generations *GenerationsService
	Account     *AccountService
}

// New creates a Client, applying defaults for zero-valued fields.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("voxa: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	retry := DefaultRetryPolicy(cfg.MaxRetries)
	if cfg.Retry != nil {
		retry = *cfg.Retry
	}

	c := &Client{
		transport: &transport{
			baseURL:    cfg.BaseURL,
			apiKey:     cfg.APIKey,
			timeout:    cfg.Timeout,
			httpClient: httpClient,
		},
		retry:        retry,
		logger:       logger,
		pollInterval: cfg.PollInterval,
		maxPollWait:  cfg.MaxPollDuration,
	}
	c.Voices = &VoicesService{client: c}
	c.Files = &FilesService{client: c}
	c.Generations = &GenerationsService{client: c}
	c.Account = &AccountService{client: c}
	return c, nil
}
