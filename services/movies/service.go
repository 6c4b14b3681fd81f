// Package movies turns free-text descriptions into ranked movie cards and
// enriches single movies with credits, trailer and gallery data.
package movies

//go:generate mockgen -source=service.go -destination=mock_sources_test.go -package=movies

import (
	"context"
	"errors"
	"log"

	"moviefinder/services/metadata"
)

const (
	defaultMaxResults = 10
	defaultMaxCast    = 8

	callSearch      = "search"
	callCredits     = "credits"
	callExternalIDs = "external_ids"
)

var (
	ErrDescriptionRequired = errors.New("description is required")
	ErrMovieIDRequired     = errors.New("movie id is required")
	ErrInference           = errors.New("title inference failed")
	ErrSearch              = errors.New("movie search failed")
	ErrNoMatches           = errors.New("no matching movies")
	ErrDetails             = errors.New("movie details unavailable")
	ErrSimilar             = errors.New("similar movies unavailable")
)

// TitleSource is the language model that guesses titles.
type TitleSource interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// MetadataSource is the movie database the guesses are resolved against.
type MetadataSource interface {
	SearchMovies(ctx context.Context, query string) ([]metadata.MovieResult, error)
	MovieDetails(ctx context.Context, movieID int64) (*metadata.MovieDetails, error)
	MovieCredits(ctx context.Context, movieID int64) (*metadata.Credits, error)
	PersonIMDBID(ctx context.Context, personID int64) (string, error)
	SimilarMovies(ctx context.Context, movieID int64) ([]metadata.MovieResult, error)
}

// FailureRecorder counts upstream failures that were absorbed instead of returned.
type FailureRecorder interface {
	RecordUpstreamFailure(call string)
}

var _ MetadataSource = (*metadata.TMDBClient)(nil)

// Options tunes the pipelines. Zero values select the defaults.
type Options struct {
	MaxResults int
	MaxCast    int
	// FailOnSearchError fails the whole resolution when any title search fails.
	FailOnSearchError bool
	// MaxConcurrency caps each fan-out; zero runs one goroutine per unit of work.
	MaxConcurrency int
}

// Service runs the resolution, enrichment and similar-movie pipelines.
type Service struct {
	titles   TitleSource
	meta     MetadataSource
	failures FailureRecorder
	opts     Options
}

func NewService(titles TitleSource, meta MetadataSource, failures FailureRecorder, opts Options) *Service {
	if opts.MaxResults <= 0 {
		opts.MaxResults = defaultMaxResults
	}
	if opts.MaxCast <= 0 {
		opts.MaxCast = defaultMaxCast
	}
	if opts.MaxConcurrency < 0 {
		opts.MaxConcurrency = 0
	}
	return &Service{titles: titles, meta: meta, failures: failures, opts: opts}
}

func (s *Service) fanOut(n int) int {
	if s.opts.MaxConcurrency > 0 && s.opts.MaxConcurrency < n {
		return s.opts.MaxConcurrency
	}
	return n
}

func (s *Service) absorb(call string, format string, args ...any) {
	log.Printf("[movies] "+format, args...)
	if s.failures != nil {
		s.failures.RecordUpstreamFailure(call)
	}
}
