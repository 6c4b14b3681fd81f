package movies

import (
	"context"
	"fmt"

	"moviefinder/models"
)

// Similar returns up to MaxResults movies the provider considers similar.
func (s *Service) Similar(ctx context.Context, movieID int64) ([]models.MovieSummary, error) {
	if movieID <= 0 {
		return nil, ErrMovieIDRequired
	}

	results, err := s.meta.SimilarMovies(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSimilar, err)
	}

	summaries := make([]models.MovieSummary, 0, min(len(results), s.opts.MaxResults))
	for _, result := range results {
		if len(summaries) == s.opts.MaxResults {
			break
		}
		summaries = append(summaries, summarize(result))
	}
	return summaries, nil
}
