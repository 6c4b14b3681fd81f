package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"moviefinder/models"
	"moviefinder/services/metadata"
	"moviefinder/services/movies"
)

type moviesService interface {
	Resolve(ctx context.Context, description string) ([]models.MovieSummary, error)
	Enrich(ctx context.Context, movieID int64) (*models.MovieDetail, error)
	Similar(ctx context.Context, movieID int64) ([]models.MovieSummary, error)
}

var _ moviesService = (*movies.Service)(nil)

type MoviesHandler struct {
	Service moviesService
}

func NewMoviesHandler(service moviesService) *MoviesHandler {
	return &MoviesHandler{Service: service}
}

type findRequest struct {
	Description string `json:"description"`
}

// Find resolves a free-text description into movie cards.
func (h *MoviesHandler) Find(w http.ResponseWriter, r *http.Request) {
	var body findRequest
	if err := decodeBody(r, &body); err != nil {
		writeJSONError(w, "Description is required", http.StatusBadRequest)
		return
	}

	results, err := h.Service.Resolve(r.Context(), body.Description)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, results)
	case errors.Is(err, movies.ErrDescriptionRequired):
		writeJSONError(w, "Description is required", http.StatusBadRequest)
	case errors.Is(err, movies.ErrNoMatches):
		writeJSONError(w, "Could not find any matching movies.", http.StatusNotFound)
	default:
		log.Printf("[movies] find failed: %v", err)
		writeJSONError(w, "Failed to process your request.", http.StatusInternalServerError)
	}
}

// Details returns the enriched detail view for one movie.
func (h *MoviesHandler) Details(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(r, "id")
	if !ok {
		writeJSONError(w, "A valid movie id is required", http.StatusBadRequest)
		return
	}

	detail, err := h.Service.Enrich(r.Context(), movieID)
	if err != nil {
		log.Printf("[movies] details for %d failed: %v", movieID, err)
		writeUpstreamError(w, err, "Failed to fetch movie details", "An internal server error occurred while fetching movie details.")
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// Similar returns movies related to the one in the path.
func (h *MoviesHandler) Similar(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(r, "id")
	if !ok {
		writeJSONError(w, "A valid movie id is required", http.StatusBadRequest)
		return
	}

	results, err := h.Service.Similar(r.Context(), movieID)
	if err != nil {
		log.Printf("[movies] similar for %d failed: %v", movieID, err)
		writeUpstreamError(w, err, "Failed to fetch similar movies", "An internal server error occurred while fetching similar movies.")
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// writeUpstreamError maps provider failures to a short status summary and
// never echoes the provider's response body.
func writeUpstreamError(w http.ResponseWriter, err error, prefix, fallback string) {
	var statusErr *metadata.StatusError
	switch {
	case errors.Is(err, movies.ErrMovieIDRequired):
		writeJSONError(w, "A valid movie id is required", http.StatusBadRequest)
	case errors.Is(err, metadata.ErrNotConfigured):
		writeJSONError(w, "TMDB API key is not configured.", http.StatusInternalServerError)
	case errors.As(err, &statusErr):
		writeJSONError(w, fmt.Sprintf("%s: %s", prefix, statusErr.Text()), statusErr.StatusCode)
	default:
		writeJSONError(w, fallback, http.StatusInternalServerError)
	}
}
