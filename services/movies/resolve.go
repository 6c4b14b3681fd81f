package movies

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sourcegraph/conc/iter"

	"moviefinder/models"
	"moviefinder/services/metadata"
)

type searchPage struct {
	results []metadata.MovieResult
	err     error
}

// Resolve asks the model for candidate titles, searches every candidate
// concurrently and returns at most MaxResults summaries in candidate order.
func (s *Service) Resolve(ctx context.Context, description string) ([]models.MovieSummary, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrDescriptionRequired
	}

	raw, err := s.titles.Complete(ctx, titlePrompt, description)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInference, err)
	}

	candidates := nonEmpty(ParseTitles(raw))
	log.Printf("[movies] %d candidate title(s) from inference", len(candidates))

	pages := s.searchAll(ctx, candidates)

	summaries := make([]models.MovieSummary, 0, s.opts.MaxResults)
	for i, page := range pages {
		if page.err != nil {
			if s.opts.FailOnSearchError {
				return nil, fmt.Errorf("%w: %q: %w", ErrSearch, candidates[i], page.err)
			}
			continue
		}
		for _, result := range page.results {
			summaries = append(summaries, summarize(result))
		}
	}

	if len(summaries) > s.opts.MaxResults {
		summaries = summaries[:s.opts.MaxResults]
	}
	if len(summaries) == 0 {
		return nil, ErrNoMatches
	}
	return summaries, nil
}

func (s *Service) searchAll(ctx context.Context, titles []string) []searchPage {
	if len(titles) == 0 {
		return nil
	}

	mapper := iter.Mapper[string, searchPage]{MaxGoroutines: s.fanOut(len(titles))}
	return mapper.Map(titles, func(title *string) searchPage {
		results, err := s.meta.SearchMovies(ctx, *title)
		if err != nil {
			s.absorb(callSearch, "search for %q failed: %v", *title, err)
			return searchPage{err: err}
		}
		return searchPage{results: results}
	})
}
