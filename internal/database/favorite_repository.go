package database

import (
	"context"
	"database/sql"
	"fmt"

	"moviefinder/models"
)

// FavoriteRepository persists per-user favorite movies.
type FavoriteRepository struct {
	db *sql.DB
}

func NewFavoriteRepository(db *sql.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// List returns the user's favorites in the order they were added.
func (r *FavoriteRepository) List(ctx context.Context, userID int64) ([]models.Favorite, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, movie_id, title, poster_url, release_date, description
		 FROM favorites WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("query favorites: %w", err)
	}
	defer rows.Close()

	favorites := make([]models.Favorite, 0)
	for rows.Next() {
		var f models.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.MovieID, &f.Title, &f.PosterURL, &f.ReleaseDate, &f.Description); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorites: %w", err)
	}
	return favorites, nil
}

// Add stores a favorite. It reports false when the movie was already saved.
func (r *FavoriteRepository) Add(ctx context.Context, f models.Favorite) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO favorites (user_id, movie_id, title, poster_url, release_date, description)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, movie_id) DO NOTHING`,
		f.UserID, f.MovieID, f.Title, f.PosterURL, f.ReleaseDate, f.Description)
	if err != nil {
		return false, fmt.Errorf("insert favorite: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert favorite: %w", err)
	}
	return n > 0, nil
}

// Remove deletes a favorite. It reports whether a row existed.
func (r *FavoriteRepository) Remove(ctx context.Context, userID int64, movieID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE user_id = ? AND movie_id = ?`, userID, movieID)
	if err != nil {
		return false, fmt.Errorf("delete favorite: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete favorite: %w", err)
	}
	return n > 0, nil
}
