package movies

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/iter"

	"moviefinder/models"
	"moviefinder/services/metadata"
)

// headlineJobs lists the crew roles surfaced on the detail page, in display order.
var headlineJobs = []string{"Director", "Producer", "Writer"}

// Enrich builds the detail view for one movie. Only the core details call is
// fatal; credits and per-person lookups degrade to empty or null fields.
func (s *Service) Enrich(ctx context.Context, movieID int64) (*models.MovieDetail, error) {
	if movieID <= 0 {
		return nil, ErrMovieIDRequired
	}

	var (
		details    *metadata.MovieDetails
		detailsErr error
		credits    *metadata.Credits
		creditsErr error
		wg         conc.WaitGroup
	)
	wg.Go(func() { details, detailsErr = s.meta.MovieDetails(ctx, movieID) })
	wg.Go(func() { credits, creditsErr = s.meta.MovieCredits(ctx, movieID) })
	wg.Wait()

	if detailsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrDetails, detailsErr)
	}
	if creditsErr != nil || credits == nil {
		s.absorb(callCredits, "credits for movie %d failed: %v", movieID, creditsErr)
		credits = &metadata.Credits{}
	}

	cast := credits.Cast
	if len(cast) > s.opts.MaxCast {
		cast = cast[:s.opts.MaxCast]
	}
	crew := headlineCrew(credits.Crew)

	people := make([]int64, 0, len(cast)+len(crew))
	for _, c := range cast {
		people = append(people, c.ID)
	}
	for _, c := range crew {
		people = append(people, c.ID)
	}
	imdbURLs := s.personIMDBURLs(ctx, people)

	detail := &models.MovieDetail{
		MovieSummary: models.MovieSummary{
			ID:          details.ID,
			Title:       details.Title,
			Description: details.Overview,
			PosterURL:   metadata.ImageURL(details.PosterPath, metadata.PosterSize),
			ReleaseYear: releaseYear(details.ReleaseDate),
		},
		Genres:      genreNames(details.Genres),
		Rating:      details.VoteAverage,
		VoteCount:   details.VoteCount,
		BackdropURL: metadata.ImageURL(details.BackdropPath, metadata.OriginalSize),
		Images: models.MovieImages{
			Backdrops: imageURLs(details.Images.Backdrops, metadata.BackdropSize),
			Posters:   imageURLs(details.Images.Posters, metadata.PosterSize),
		},
		TrailerURL: trailerURL(details.Videos.Results),
		Cast:       make([]models.CastMember, 0, len(cast)),
		Crew:       make([]models.CrewMember, 0, len(crew)),
		IMDBID:     details.IMDBID,
		IMDBURL:    optionalURL(imdbTitleURL, details.IMDBID),
	}

	for i, c := range cast {
		detail.Cast = append(detail.Cast, models.CastMember{
			ID:         c.ID,
			Name:       c.Name,
			Character:  c.Character,
			ProfileURL: optionalImage(c.ProfilePath, metadata.ProfileSize),
			IMDBURL:    imdbURLs[i],
			TMDBURL:    fmt.Sprintf(tmdbPersonURL, c.ID),
		})
	}
	for i, c := range crew {
		detail.Crew = append(detail.Crew, models.CrewMember{
			ID:      c.ID,
			Name:    c.Name,
			Job:     c.Job,
			IMDBURL: imdbURLs[len(cast)+i],
		})
	}

	return detail, nil
}

// headlineCrew picks the first credit for each headline job that is present.
func headlineCrew(crew []metadata.CrewCredit) []metadata.CrewCredit {
	picked := make([]metadata.CrewCredit, 0, len(headlineJobs))
	for _, job := range headlineJobs {
		for _, c := range crew {
			if c.Job == job {
				picked = append(picked, c)
				break
			}
		}
	}
	return picked
}

// personIMDBURLs resolves IMDb profile links, one goroutine per person.
// A failed lookup yields nil for that person only.
func (s *Service) personIMDBURLs(ctx context.Context, people []int64) []*string {
	if len(people) == 0 {
		return nil
	}

	mapper := iter.Mapper[int64, *string]{MaxGoroutines: s.fanOut(len(people))}
	return mapper.Map(people, func(personID *int64) *string {
		imdbID, err := s.meta.PersonIMDBID(ctx, *personID)
		if err != nil {
			s.absorb(callExternalIDs, "external ids for person %d failed: %v", *personID, err)
			return nil
		}
		return optionalURL(imdbPersonURL, imdbID)
	})
}
