package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"moviefinder/handlers"
)

// handleOptions handles OPTIONS requests for CORS preflight
func handleOptions(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Routes bundles everything Register mounts.
type Routes struct {
	Movies    *handlers.MoviesHandler
	Users     *handlers.UsersHandler
	Favorites *handlers.FavoritesHandler

	// Auth serves the login, logout and user endpoints under /auth.
	Auth http.Handler
	// RequireSession rejects requests without a valid session cookie.
	RequireSession func(http.Handler) http.Handler
	// Metrics is served at /metrics when set.
	Metrics http.Handler
	// Observer receives per-request timings when set.
	Observer requestObserver
}

// Register mounts API endpoints onto the provided router.
func Register(r *mux.Router, routes Routes) {
	r.Use(RequestIDMiddleware)
	r.Use(AccessLogMiddleware(routes.Observer))

	if routes.Metrics != nil {
		r.Handle("/metrics", routes.Metrics).Methods(http.MethodGet)
	}
	if routes.Auth != nil {
		r.PathPrefix("/auth/").Handler(routes.Auth)
	}

	api := r.PathPrefix("/api").Subrouter()

	// Movie discovery (public)
	api.HandleFunc("/movie/find", routes.Movies.Find).Methods(http.MethodPost)
	api.HandleFunc("/movie/find", handleOptions).Methods(http.MethodOptions)
	api.HandleFunc("/movie/{id}", routes.Movies.Details).Methods(http.MethodGet)
	api.HandleFunc("/movie/{id}", handleOptions).Methods(http.MethodOptions)
	api.HandleFunc("/movie/{id}/similar", routes.Movies.Similar).Methods(http.MethodGet)
	api.HandleFunc("/movie/{id}/similar", handleOptions).Methods(http.MethodOptions)

	// Account routes that do not need a session
	api.HandleFunc("/user/register", routes.Users.Register).Methods(http.MethodPost)
	api.HandleFunc("/user/register", handleOptions).Methods(http.MethodOptions)
	api.HandleFunc("/user/logout", routes.Users.Logout).Methods(http.MethodPost)
	api.HandleFunc("/user/logout", handleOptions).Methods(http.MethodOptions)

	// Protected routes - require a session
	protected := api.PathPrefix("/user").Subrouter()
	if routes.RequireSession != nil {
		protected.Use(routes.RequireSession)
	}
	protected.HandleFunc("/me", routes.Users.Me).Methods(http.MethodGet)
	protected.HandleFunc("/me", handleOptions).Methods(http.MethodOptions)

	owned := protected.PathPrefix("/{userID:[0-9]+}").Subrouter()
	owned.Use(OwnershipMiddleware)
	owned.HandleFunc("/favorites", routes.Favorites.List).Methods(http.MethodGet)
	owned.HandleFunc("/favorites", routes.Favorites.Add).Methods(http.MethodPost)
	owned.HandleFunc("/favorites", handleOptions).Methods(http.MethodOptions)
	owned.HandleFunc("/favorites/{movieID}", routes.Favorites.Remove).Methods(http.MethodDelete)
	owned.HandleFunc("/favorites/{movieID}", handleOptions).Methods(http.MethodOptions)
}
