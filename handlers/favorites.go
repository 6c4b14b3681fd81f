package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"moviefinder/models"
	"moviefinder/services/favorites"
)

type favoritesService interface {
	List(ctx context.Context, userID int64) ([]models.Favorite, error)
	Add(ctx context.Context, userID int64, input models.FavoriteInput) error
	Remove(ctx context.Context, userID int64, movieID string) error
}

var _ favoritesService = (*favorites.Service)(nil)

type FavoritesHandler struct {
	Service favoritesService
}

func NewFavoritesHandler(service favoritesService) *FavoritesHandler {
	return &FavoritesHandler{Service: service}
}

func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userID")
	if !ok {
		writeJSONError(w, "userId is required", http.StatusBadRequest)
		return
	}

	items, err := h.Service.List(r.Context(), userID)
	if err != nil {
		log.Printf("[favorites] list for user %d failed: %v", userID, err)
		writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"favorites": items})
}

func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userID")
	if !ok {
		writeJSONError(w, "userId is required", http.StatusBadRequest)
		return
	}

	var body models.FavoriteInput
	if err := decodeBody(r, &body); err != nil {
		writeJSONError(w, "Movie object with id required", http.StatusBadRequest)
		return
	}

	if err := h.Service.Add(r.Context(), userID, body); err != nil {
		if errors.Is(err, favorites.ErrMovieIDRequired) {
			writeJSONError(w, "Movie object with id required", http.StatusBadRequest)
			return
		}
		log.Printf("[favorites] add for user %d failed: %v", userID, err)
		writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userID")
	movieID := strings.TrimSpace(mux.Vars(r)["movieID"])
	if !ok || movieID == "" {
		writeJSONError(w, "userId and movieId are required", http.StatusBadRequest)
		return
	}

	if err := h.Service.Remove(r.Context(), userID, movieID); err != nil {
		log.Printf("[favorites] remove %s for user %d failed: %v", movieID, userID, err)
		writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
