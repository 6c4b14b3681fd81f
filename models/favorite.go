package models

// Favorite is a movie saved by a user.
type Favorite struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	MovieID     string `json:"movieId"`
	Title       string `json:"title"`
	PosterURL   string `json:"posterUrl"`
	ReleaseDate string `json:"releaseDate"`
	Description string `json:"description"`
}

// FavoriteInput captures the movie card a client wants to save.
type FavoriteInput struct {
	ID          int64  `json:"id" validate:"required,gt=0"`
	Title       string `json:"title"`
	PosterURL   string `json:"posterUrl"`
	ReleaseYear string `json:"releaseYear"`
	Description string `json:"description"`
}
