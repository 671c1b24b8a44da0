package voxa

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestVoicesListSendsFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/voices" {
			t.Errorf("path = %s, want /v1/voices", r.URL.Path)
		}
		if got := r.URL.Query().Get("language"); got != "en-GB" {
			t.Errorf("language = %q, want en-GB", got)
		}
		if _, present := r.URL.Query()["gender"]; present {
			t.Error("empty gender filter should be omitted")
		}
		_, _ = w.Write([]byte(`{"voices":[{"id":"v1","name":"Ada","language":"en-GB","gender":"female"}]}`))
	}))
	defer server.Close()

	c := testClient(t, server.URL, fastPolicy(1))
	voices, err := c.Voices.List(context.Background(), VoiceListParams{Language: "en-GB"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(voices) != 1 || voices[0].Name != "Ada" {
		t.Errorf("voices = %+v, want one voice named Ada", voices)
	}
}

func TestFilesUploadRoundTrip(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// First attempt fails with a retryable status; the multipart body
		// must arrive intact on the retry.
		if atomic.AddInt32(&attempts, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("failed to parse multipart form: %v", err)
			return
		}
		if got := r.FormValue("name"); got != "my sample" {
			t.Errorf("name = %q, want my sample", got)
		}
		if got := r.FormValue("purpose"); got != "voice_clone" {
			t.Errorf("purpose = %q, want voice_clone", got)
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Errorf("missing file part: %v", err)
			return
		}
		defer f.Close()
		if hdr.Filename != "sample.wav" {
			t.Errorf("filename = %q, want sample.wav", hdr.Filename)
		}
		content, _ := io.ReadAll(f)
		if string(content) != "RIFF-fake-wav" {
			t.Errorf("file content = %q, want RIFF-fake-wav", content)
		}

		_ = json.NewEncoder(w).Encode(File{ID: "f1", Name: "my sample", Purpose: "voice_clone", SizeBytes: 13})
	}))
	defer server.Close()

	c := testClient(t, server.URL, fastPolicy(2))
	uploaded, err := c.Files.Upload(context.Background(), UploadParams{
		Name:     "my sample",
		Purpose:  "voice_clone",
		Filename: "sample.wav",
		Content:  strings.NewReader("RIFF-fake-wav"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uploaded.ID != "f1" {
		t.Errorf("ID = %q, want f1", uploaded.ID)
	}
	if n := atomic.LoadInt32(&attempts); n != 2 {
		t.Errorf("attempts = %d, want 2", n)
	}
}

func TestFilesDeleteNoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		if r.URL.Path != "/v1/files/f1" {
			t.Errorf("path = %s, want /v1/files/f1", r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := testClient(t, server.URL, fastPolicy(1))
	if err := c.Files.Delete(context.Background(), "f1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAccountGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/account" {
			t.Errorf("path = %s, want /v1/account", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"email":"dev@example.com","plan":"pro","balance_cents":4200}`))
	}))
	defer server.Close()

	c := testClient(t, server.URL, fastPolicy(1))
	account, err := c.Account.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.BalanceCents != 4200 {
		t.Errorf("BalanceCents = %d, want 4200", account.BalanceCents)
	}
	if account.Plan != "pro" {
		t.Errorf("Plan = %q, want pro", account.Plan)
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected an error for a missing API key")
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	c, err := New(Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.transport.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %s, want %s", c.transport.baseURL, DefaultBaseURL)
	}
	if c.transport.timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", c.transport.timeout, DefaultTimeout)
	}
	if c.retry.MaxRetries != DefaultMaxRetries {
		t.Errorf("MaxRetries = %d, want %d", c.retry.MaxRetries, DefaultMaxRetries)
	}
	if c.pollInterval != DefaultPollInterval {
		t.Errorf("pollInterval = %v, want %v", c.pollInterval, DefaultPollInterval)
	}
}
