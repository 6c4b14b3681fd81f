package favorites

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"moviefinder/internal/database"
	"moviefinder/models"
)

var (
	ErrUserIDRequired  = errors.New("user id is required")
	ErrMovieIDRequired = errors.New("movie id is required")
)

type store interface {
	List(ctx context.Context, userID int64) ([]models.Favorite, error)
	Add(ctx context.Context, f models.Favorite) (bool, error)
	Remove(ctx context.Context, userID int64, movieID string) (bool, error)
}

var _ store = (*database.FavoriteRepository)(nil)

// Service manages the favorites list of each account.
type Service struct {
	store store
}

func NewService(store store) *Service {
	return &Service{store: store}
}

// List returns the user's favorites, oldest first.
func (s *Service) List(ctx context.Context, userID int64) ([]models.Favorite, error) {
	if userID <= 0 {
		return nil, ErrUserIDRequired
	}
	return s.store.List(ctx, userID)
}

// Add saves a movie card. Saving the same movie twice is a no-op.
func (s *Service) Add(ctx context.Context, userID int64, input models.FavoriteInput) error {
	if userID <= 0 {
		return ErrUserIDRequired
	}
	if input.ID <= 0 {
		return ErrMovieIDRequired
	}

	fav := models.Favorite{
		UserID:      userID,
		MovieID:     strconv.FormatInt(input.ID, 10),
		Title:       strings.TrimSpace(input.Title),
		PosterURL:   strings.TrimSpace(input.PosterURL),
		ReleaseDate: strings.TrimSpace(input.ReleaseYear),
		Description: input.Description,
	}

	inserted, err := s.store.Add(ctx, fav)
	if err != nil {
		return err
	}
	if !inserted {
		log.Printf("[favorites] user %d already saved movie %s", userID, fav.MovieID)
	}
	return nil
}

// Remove deletes a saved movie. Removing a movie that is not saved succeeds.
func (s *Service) Remove(ctx context.Context, userID int64, movieID string) error {
	if userID <= 0 {
		return ErrUserIDRequired
	}
	movieID = strings.TrimSpace(movieID)
	if movieID == "" {
		return ErrMovieIDRequired
	}
	_, err := s.store.Remove(ctx, userID, movieID)
	return err
}
