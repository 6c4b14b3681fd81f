package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"golang.org/x/time/rate"
)

const (
	tmdbBaseURL      = "https://api.themoviedb.org/3"
	tmdbImageBaseURL = "https://image.tmdb.org/t/p"

	PosterSize   = "w500"
	BackdropSize = "w1280"
	ProfileSize  = "w185"
	OriginalSize = "original"
)

// ErrNotConfigured is returned by every call when no API key is set.
var ErrNotConfigured = errors.New("tmdb api key not configured")

// StatusError carries a non-2xx upstream response so callers can propagate it.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb request failed: %s", e.Status)
}

// Text returns the bare reason phrase, e.g. "Not Found".
func (e *StatusError) Text() string {
	if text := http.StatusText(e.StatusCode); text != "" {
		return text
	}
	return strings.TrimSpace(strings.TrimPrefix(e.Status, strconv.Itoa(e.StatusCode)))
}

// Temporary reports whether a retry could succeed.
func (e *StatusError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// Options configures a TMDBClient.
type Options struct {
	APIKey     string
	Language   string
	BaseURL    string
	HTTPClient *http.Client
	// Timeout bounds each individual request attempt.
	Timeout time.Duration
	// RetryAttempts is the total number of attempts per call; values below 1 mean one.
	RetryAttempts int
	RetryDelay    time.Duration
	// RequestsPerSecond paces outbound requests; zero disables pacing.
	RequestsPerSecond float64
	Burst             int
}

// TMDBClient talks to The Movie Database v3 API.
type TMDBClient struct {
	apiKey     string
	language   string
	baseURL    string
	httpc      *http.Client
	timeout    time.Duration
	attempts   uint
	retryDelay time.Duration
	limiter    *rate.Limiter
}

func NewTMDBClient(opts Options) *TMDBClient {
	httpc := opts.HTTPClient
	if httpc == nil {
		httpc = &http.Client{Timeout: 15 * time.Second}
	}
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = tmdbBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	attempts := opts.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	retryDelay := opts.RetryDelay
	if retryDelay <= 0 {
		retryDelay = 300 * time.Millisecond
	}

	c := &TMDBClient{
		apiKey:     strings.TrimSpace(opts.APIKey),
		language:   strings.TrimSpace(opts.Language),
		baseURL:    baseURL,
		httpc:      httpc,
		timeout:    timeout,
		attempts:   uint(attempts),
		retryDelay: retryDelay,
	}
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}
	return c
}

func (c *TMDBClient) IsConfigured() bool {
	return c != nil && c.apiKey != ""
}

// SearchMovies runs /search/movie for a title, most popular first.
func (c *TMDBClient) SearchMovies(ctx context.Context, query string) ([]MovieResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("sort_by", "popularity.desc")

	var payload searchResponse
	if err := c.doGET(ctx, params, &payload, "search", "movie"); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	if payload.Results == nil {
		return []MovieResult{}, nil
	}
	return payload.Results, nil
}

// MovieDetails fetches a movie with its image gallery and videos appended.
func (c *TMDBClient) MovieDetails(ctx context.Context, movieID int64) (*MovieDetails, error) {
	params := url.Values{}
	params.Set("append_to_response", "images,videos")

	var payload MovieDetails
	if err := c.doGET(ctx, params, &payload, "movie", strconv.FormatInt(movieID, 10)); err != nil {
		return nil, fmt.Errorf("movie %d: %w", movieID, err)
	}
	return &payload, nil
}

func (c *TMDBClient) MovieCredits(ctx context.Context, movieID int64) (*Credits, error) {
	var payload Credits
	if err := c.doGET(ctx, nil, &payload, "movie", strconv.FormatInt(movieID, 10), "credits"); err != nil {
		return nil, fmt.Errorf("credits for movie %d: %w", movieID, err)
	}
	return &payload, nil
}

// PersonIMDBID returns the person's IMDb id, or "" when TMDB has none.
func (c *TMDBClient) PersonIMDBID(ctx context.Context, personID int64) (string, error) {
	var payload externalIDsResponse
	if err := c.doGET(ctx, nil, &payload, "person", strconv.FormatInt(personID, 10), "external_ids"); err != nil {
		return "", fmt.Errorf("tmdb external_ids for person/%d: %w", personID, err)
	}
	return strings.TrimSpace(payload.IMDBID), nil
}

func (c *TMDBClient) SimilarMovies(ctx context.Context, movieID int64) ([]MovieResult, error) {
	var payload searchResponse
	if err := c.doGET(ctx, nil, &payload, "movie", strconv.FormatInt(movieID, 10), "similar"); err != nil {
		return nil, fmt.Errorf("similar to movie %d: %w", movieID, err)
	}
	if payload.Results == nil {
		return []MovieResult{}, nil
	}
	return payload.Results, nil
}

// doGET performs a GET with pacing and, when configured, retry with backoff.
func (c *TMDBClient) doGET(ctx context.Context, params url.Values, v any, segments ...string) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}

	endpoint, err := url.JoinPath(c.baseURL, segments...)
	if err != nil {
		return err
	}

	return retry.Do(
		func() error { return c.fetch(ctx, endpoint, params, v) },
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.retryDelay),
		retry.RetryIf(isRetryable),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Printf("[tmdb] %s failed (attempt %d/%d): %v", strings.Join(segments, "/"), n+1, c.attempts, err)
		}),
	)
}

func (c *TMDBClient) fetch(ctx context.Context, endpoint string, params url.Values, v any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	q := req.URL.Query()
	for key, values := range params {
		for _, value := range values {
			q.Add(key, value)
		}
	}
	q.Set("api_key", c.apiKey)
	if c.language != "" {
		q.Set("language", c.language)
	}
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode tmdb response: %w", err)
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

// ImageURL builds a CDN URL for an image path, or "" when the path is empty.
func ImageURL(imagePath, size string) string {
	imagePath = strings.TrimSpace(imagePath)
	if imagePath == "" {
		return ""
	}
	if !strings.HasPrefix(imagePath, "/") {
		imagePath = "/" + imagePath
	}
	return fmt.Sprintf("%s/%s%s", tmdbImageBaseURL, size, imagePath)
}
