package voxa

import (
	"context"
	"io"
	"net/http"
)

// AudioStream is a caller-owned handle to a streaming synthesis response.
// The caller is responsible for draining and closing it; Close releases both
// the connection and the attempt's deadline timer.
type AudioStream struct {
	body   io.ReadCloser
	header http.Header
	cancel context.CancelFunc
}

func newAudioStream(resp *http.Response, cancel context.CancelFunc) *AudioStream {
	return &AudioStream{
		body:   resp.Body,
		header: resp.Header,
		cancel: cancel,
	}
}

// Read reads raw audio bytes from the stream.
func (s *AudioStream) Read(p []byte) (int, error) {
	return s.body.Read(p)
}

// Close drains nothing and releases the stream. Safe to call more than once.
func (s *AudioStream) Close() error {
	err := s.body.Close()
	if s.cancel != nil {
		s.cancel()
	}
	return err
}

// Header returns the response headers of the stream.
func (s *AudioStream) Header() http.Header {
	return s.header
}

// ContentType returns the audio MIME type reported by the server.
func (s *AudioStream) ContentType() string {
	return s.header.Get("Content-Type")
}
