package voxa

import (
	"encoding/json"
	"fmt"
)

// ErrorKind discriminates the categories of errors raised by the client.
// Callers branch on Kind instead of matching status codes or message text.
type ErrorKind string

const (
	ErrInvalidRequest      ErrorKind = "invalid_request"
	ErrAuthentication      ErrorKind = "authentication"
	ErrInsufficientBalance ErrorKind = "insufficient_balance"
	ErrNotFound            ErrorKind = "not_found"
	ErrRateLimit           ErrorKind = "rate_limit"
	ErrServer              ErrorKind = "server_error"
	ErrHTTP                ErrorKind = "http_error"
	ErrNetwork             ErrorKind = "network_error"
	ErrRetriesExhausted    ErrorKind = "retries_exhausted"
)

// APIError is the single error type raised by the client. HTTPStatus is the
// real status for every HTTP-originated error and 0 for network-level and
// retry-exhaustion errors.
type APIError struct {
	Kind       ErrorKind
	Message    string
	Code       string
	HTTPStatus int
	RawBody    []byte

	// BalanceCents is set for insufficient_balance errors only.
	BalanceCents int64
	// RetryAfterSeconds is set for rate_limit errors only.
	RetryAfterSeconds float64
}

func (e *APIError) Error() string {
	if e.HTTPStatus > 0 {
		return fmt.Sprintf("voxa: %s (status %d, code %s): %s", e.Kind, e.HTTPStatus, e.Code, e.Message)
	}
	return fmt.Sprintf("voxa: %s: %s", e.Kind, e.Message)
}

// wireError mirrors the error envelope the API puts in non-2xx bodies.
type wireError struct {
	Error struct {
		Message      string  `json:"message"`
		Code         string  `json:"code"`
		BalanceCents float64 `json:"balance_cents"`
		RetryAfter   float64 `json:"retry_after"`
	} `json:"error"`
}

// classifyStatus maps an HTTP error response to a typed *APIError. It never
// fails: a malformed or absent body is treated as an empty envelope and the
// defaults below fill the gaps.
func classifyStatus(status int, body []byte) *APIError {
	var we wireError
	if len(body) > 0 {
		_ = json.Unmarshal(body, &we)
	}

	msg := we.Error.Message
	if msg == "" {
		msg = fmt.Sprintf("API error (status %d)", status)
	}
	code := we.Error.Code
	if code == "" {
		code = "unknown"
	}

	apiErr := &APIError{
		Message:    msg,
		Code:       code,
		HTTPStatus: status,
		RawBody:    body,
	}

	switch status {
	case 400:
		apiErr.Kind = ErrInvalidRequest
	case 401:
		apiErr.Kind = ErrAuthentication
	case 402:
		apiErr.Kind = ErrInsufficientBalance
		apiErr.BalanceCents = int64(we.Error.BalanceCents)
	case 404:
		apiErr.Kind = ErrNotFound
	case 429:
		apiErr.Kind = ErrRateLimit
		apiErr.RetryAfterSeconds = we.Error.RetryAfter
	case 500:
		apiErr.Kind = ErrServer
	default:
		apiErr.Kind = ErrHTTP
	}
	return apiErr
}

// networkError wraps a transport-level fault once the retry budget is spent.
func networkError(err error) *APIError {
	return &APIError{
		Kind:    ErrNetwork,
		Code:    "network_error",
		Message: fmt.Sprintf("Network error: %v", err),
	}
}
