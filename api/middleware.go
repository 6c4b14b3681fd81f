package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"moviefinder/internal/auth"
)

const requestIDHeader = "X-Request-ID"

// requestObserver records per-route request counts and latency.
type requestObserver interface {
	ObserveRequest(route, method string, status int, elapsed time.Duration)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// RequestIDMiddleware tags every request with an id, reusing the caller's when present.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(requestIDHeader, id)
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// AccessLogMiddleware logs each request and feeds the request metrics.
// Routes are labelled by their mux template so path ids do not explode cardinality.
func AccessLogMiddleware(observer requestObserver) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			elapsed := time.Since(start)

			route := "unmatched"
			if current := mux.CurrentRoute(r); current != nil {
				if tpl, err := current.GetPathTemplate(); err == nil {
					route = tpl
				}
			}

			if r.Method != http.MethodOptions {
				log.Printf("[http] %s %s %d %s id=%s", r.Method, r.URL.Path, rec.status, elapsed.Round(time.Millisecond), r.Header.Get(requestIDHeader))
			}
			if observer != nil {
				observer.ObserveRequest(route, r.Method, rec.status, elapsed)
			}
		})
	}
}

// OwnershipMiddleware hides other accounts' resources: a {userID} path
// variable that does not match the session user is answered with 404.
func OwnershipMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		raw := mux.Vars(r)["userID"]
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, ok := auth.UserFromRequest(r)
		if !ok || strconv.FormatInt(user.ID, 10) != raw {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "user not found"})
			return
		}

		next.ServeHTTP(w, r)
	})
}
