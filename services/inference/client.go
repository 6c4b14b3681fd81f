// Package inference wraps the chat-completion providers used to guess movie titles.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

var (
	ErrNotConfigured   = errors.New("inference api key not configured")
	ErrUnknownProvider = errors.New("unknown inference provider")
	ErrEmptyResponse   = errors.New("inference returned empty response")
)

// Client sends one system + user turn and returns the assistant text.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// StatusError is a non-2xx provider response. The body is never carried.
type StatusError struct {
	Provider   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s request failed: status %d", e.Provider, e.StatusCode)
}

func (e *StatusError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// Options selects and configures a provider.
type Options struct {
	Provider      string
	APIKey        string
	Model         string
	BaseURL       string
	HTTPClient    *http.Client
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
}

// New returns the client for opts.Provider (OpenAI when empty).
func New(opts Options) (Client, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case "", ProviderOpenAI:
		return NewOpenAIClient(opts), nil
	case ProviderGemini:
		return NewGeminiClient(opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, opts.Provider)
	}
}

// transport is the request plumbing shared by the providers.
type transport struct {
	name       string
	httpc      *http.Client
	timeout    time.Duration
	attempts   uint
	retryDelay time.Duration
}

func newTransport(name string, opts Options) transport {
	httpc := opts.HTTPClient
	if httpc == nil {
		httpc = &http.Client{Timeout: 60 * time.Second}
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	attempts := opts.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	delay := opts.RetryDelay
	if delay <= 0 {
		delay = 500 * time.Millisecond
	}
	return transport{name: name, httpc: httpc, timeout: timeout, attempts: uint(attempts), retryDelay: delay}
}

// postJSON marshals body, posts it and decodes the reply into out.
func (t transport) postJSON(ctx context.Context, endpoint string, header http.Header, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", t.name, err)
	}

	return retry.Do(
		func() error { return t.post(ctx, endpoint, header, payload, out) },
		retry.Context(ctx),
		retry.Attempts(t.attempts),
		retry.Delay(t.retryDelay),
		retry.RetryIf(isRetryable),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Printf("[%s] request failed (attempt %d/%d): %v", t.name, n+1, t.attempts, err)
		}),
	)
}

func (t transport) post(ctx context.Context, endpoint string, header http.Header, payload []byte, out any) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create %s request: %w", t.name, err)
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &StatusError{Provider: t.name, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", t.name, err)
	}
	return nil
}

func isRetryable(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Temporary()
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return !errors.Is(err, context.Canceled)
	}
	return false
}
