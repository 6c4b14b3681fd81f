package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"moviefinder/internal/auth"
	"moviefinder/models"
	"moviefinder/services/users"
)

type usersService interface {
	Register(ctx context.Context, email, password string) (models.User, error)
}

var _ usersService = (*users.Service)(nil)

// sessionEnder clears the session cookies.
type sessionEnder interface {
	Logout(w http.ResponseWriter)
}

var _ sessionEnder = (*auth.Service)(nil)

type UsersHandler struct {
	Service  usersService
	Sessions sessionEnder
}

func NewUsersHandler(service usersService, sessions sessionEnder) *UsersHandler {
	return &UsersHandler{Service: service, Sessions: sessions}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *UsersHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if err := decodeBody(r, &body); err != nil {
		writeJSONError(w, "Email and password are required.", http.StatusBadRequest)
		return
	}

	user, err := h.Service.Register(r.Context(), body.Email, body.Password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, user.Public())
	case errors.Is(err, users.ErrCredentialsRequired):
		writeJSONError(w, "Email and password are required.", http.StatusBadRequest)
	case errors.Is(err, users.ErrUserExists):
		writeJSONError(w, "User already exists.", http.StatusConflict)
	default:
		log.Printf("[users] register failed: %v", err)
		writeJSONError(w, "Internal server error.", http.StatusInternalServerError)
	}
}

// Me returns the signed-in account. The route sits behind the session middleware.
func (h *UsersHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromRequest(r)
	if !ok {
		writeJSONError(w, "Not authenticated", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, user.Public())
}

func (h *UsersHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if h.Sessions != nil {
		h.Sessions.Logout(w)
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}
