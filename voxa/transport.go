package voxa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// request describes one API call. It is immutable for the lifetime of the
// call and reused unchanged across retry attempts.
type request struct {
	op      string            // logical operation name for logs and metrics
	method  string
	path    string
	query   map[string]string // empty values are omitted from the URL
	json    any               // JSON body, nil for none
	form    *multipartForm    // multipart body, nil for none
	timeout time.Duration     // per-call override, 0 = client default
}

// multipartForm holds a multipart/form-data body. File content is buffered
// up front so every retry attempt sends identical bytes.
type multipartForm struct {
	fields   map[string]string
	fileKey  string
	filename string
	file     []byte
}

func (f *multipartForm) encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range f.fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", fmt.Errorf("write form field %s: %w", k, err)
		}
	}
	if f.file != nil {
		part, err := w.CreateFormFile(f.fileKey, f.filename)
		if err != nil {
			return nil, "", fmt.Errorf("create form file: %w", err)
		}
		if _, err := part.Write(f.file); err != nil {
			return nil, "", fmt.Errorf("write form file: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}

// transport executes exactly one bounded network attempt. It is the only
// place in the client that performs network I/O.
type transport struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
}

// roundTrip performs a single attempt under its own deadline. On success the
// returned cancel releases the deadline timer and must be called by whoever
// ends up owning the response body. On failure the deadline is already
// released.
func (t *transport) roundTrip(ctx context.Context, req *request) (*http.Response, context.CancelFunc, error) {
	timeout := t.timeout
	if req.timeout > 0 {
		timeout = req.timeout
	}
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)

	httpReq, err := t.buildRequest(attemptCtx, req)
	if err != nil {
		cancel()
		return nil, nil, err
	}

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	return resp, cancel, nil
}

func (t *transport) buildRequest(ctx context.Context, req *request) (*http.Request, error) {
	target, err := t.buildURL(req.path, req.query)
	if err != nil {
		return nil, err
	}

	var body *bytes.Buffer
	contentType := ""
	switch {
	case req.json != nil:
		data, err := json.Marshal(req.json)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewBuffer(data)
		contentType = "application/json"
	case req.form != nil:
		buf, ct, err := req.form.encode()
		if err != nil {
			return nil, err
		}
		body = buf
		contentType = ct
	default:
		body = &bytes.Buffer{}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+t.apiKey)
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	return httpReq, nil
}

func (t *transport) buildURL(path string, query map[string]string) (string, error) {
	u, err := url.Parse(strings.TrimRight(t.baseURL, "/") + path)
	if err != nil {
		return "", fmt.Errorf("build url: %w", err)
	}
	if len(query) > 0 {
		q := u.Query()
		for k, v := range query {
			if v == "" {
				continue
			}
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
