package voxa

import (
	"context"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"
)

// GenerationsService synthesizes speech, either as a live audio stream or as
// an async job polled to completion.
type GenerationsService struct {
	client *Client
}

// GenerationParams describe one synthesis request. Text is assumed to be
// validated by the caller.
type GenerationParams struct {
	Text       string  `json:"text"`
	Voice      string  `json:"voice,omitempty"`
	Model      string  `json:"model,omitempty"`
	Format     string  `json:"format,omitempty"`
	Speed      float64 `json:"speed,omitempty"`
	SampleRate int     `json:"sample_rate,omitempty"`

	// Timeout overrides the client's per-attempt timeout for this call.
	Timeout time.Duration `json:"-"`
}

// GenerationResult is the outcome of a completed async generation. Model,
// Voice and CharacterCount come from the submitted request; cost is not
// observable from polling and is always 0.
type GenerationResult struct {
	AudioURL       string
	Model          string
	Voice          string
	CharacterCount int
	CostCents      int64
}

// Stream synthesizes speech and returns the audio as a caller-owned stream.
func (s *GenerationsService) Stream(ctx context.Context, params GenerationParams) (*AudioStream, error) {
	return s.client.stream(ctx, &request{
		op:      "generations.stream",
		method:  http.MethodPost,
		path:    "/v1/tts/stream",
		json:    params,
		timeout: params.Timeout,
	})
}

// Create submits an async generation job.
func (s *GenerationsService) Create(ctx context.Context, params GenerationParams) (*Job, error) {
	var job Job
	err := s.client.unaryInto(ctx, &request{
		op:      "generations.create",
		method:  http.MethodPost,
		path:    "/v1/tts",
		json:    params,
		timeout: params.Timeout,
	}, &job)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// GetJob fetches the current state of an async job.
func (s *GenerationsService) GetJob(ctx context.Context, id string) (*Job, error) {
	var job Job
	err := s.client.unaryInto(ctx, &request{
		op:     "generations.get_job",
		method: http.MethodGet,
		path:   "/v1/tts/jobs/" + url.PathEscape(id),
	}, &job)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// WaitForJob polls job until it reaches a terminal status and returns the
// terminal job. A failed job is returned as an invalid_request error.
func (s *GenerationsService) WaitForJob(ctx context.Context, job *Job) (*Job, error) {
	return waitForTerminal(ctx, job,
		s.client.pollInterval, s.client.maxPollWait, s.client.logger, s.GetJob)
}

// WaitForJobID is WaitForJob for a job known only by ID, e.g. one submitted
// by an earlier process.
func (s *GenerationsService) WaitForJobID(ctx context.Context, id string) (*Job, error) {
	job, err := s.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.WaitForJob(ctx, job)
}

// CreateAndWait submits a generation job and polls it to completion,
// assembling the result from the terminal job and the original request.
func (s *GenerationsService) CreateAndWait(ctx context.Context, params GenerationParams) (*GenerationResult, error) {
	job, err := s.Create(ctx, params)
	if err != nil {
		return nil, err
	}
	done, err := s.WaitForJob(ctx, job)
	if err != nil {
		return nil, err
	}
	return &GenerationResult{
		AudioURL:       done.AudioURL,
		Model:          params.Model,
		Voice:          params.Voice,
		CharacterCount: utf8.RuneCountInString(params.Text),
	}, nil
}
