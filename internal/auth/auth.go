// Package auth issues and verifies JWT session cookies for registered accounts.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	pkgzauth "github.com/go-pkgz/auth/v2"
	"github.com/go-pkgz/auth/v2/avatar"
	"github.com/go-pkgz/auth/v2/logger"
	"github.com/go-pkgz/auth/v2/provider"
	"github.com/go-pkgz/auth/v2/token"

	"moviefinder/models"
)

// ProviderName is the direct-login provider, served at /auth/local/login.
const ProviderName = "local"

var ErrSecretRequired = errors.New("auth secret is required")

// CredentialChecker validates an email/password pair.
type CredentialChecker interface {
	CheckPassword(ctx context.Context, email, password string) (bool, error)
}

// UserLookup resolves the account behind a session.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

type Options struct {
	Secret         string
	Issuer         string
	URL            string
	TokenDuration  time.Duration
	CookieDuration time.Duration
	DisableXSRF    bool
	SecureCookies  bool
}

// Service wraps the go-pkgz auth service with a single direct provider.
type Service struct {
	auth   *pkgzauth.Service
	lookup UserLookup
}

func NewService(opts Options, checker CredentialChecker, lookup UserLookup) (*Service, error) {
	secret := strings.TrimSpace(opts.Secret)
	if secret == "" {
		return nil, ErrSecretRequired
	}
	if opts.TokenDuration <= 0 {
		opts.TokenDuration = 15 * time.Minute
	}
	if opts.CookieDuration <= 0 {
		opts.CookieDuration = 7 * 24 * time.Hour
	}
	if opts.Issuer == "" {
		opts.Issuer = "moviefinder"
	}

	svc := pkgzauth.NewService(pkgzauth.Opts{
		SecretReader: token.SecretFunc(func(string) (string, error) {
			return secret, nil
		}),
		TokenDuration:  opts.TokenDuration,
		CookieDuration: opts.CookieDuration,
		Issuer:         opts.Issuer,
		URL:            opts.URL,
		DisableXSRF:    opts.DisableXSRF,
		SecureCookies:  opts.SecureCookies,
		AvatarStore:    avatar.NewNoOp(),
		Logger: logger.Func(func(format string, args ...interface{}) {
			log.Printf("[auth] "+format, args...)
		}),
	})

	svc.AddDirectProvider(ProviderName, provider.CredCheckerFunc(func(user, password string) (bool, error) {
		return checker.CheckPassword(context.Background(), user, password)
	}))

	return &Service{auth: svc, lookup: lookup}, nil
}

// Handlers returns the login/logout/user routes, to be mounted under /auth.
func (s *Service) Handlers() http.Handler {
	authHandler, _ := s.auth.Handlers()
	return authHandler
}

// Middleware reads the session cookie and rejects requests without a known account.
func (s *Service) Middleware() func(http.Handler) http.Handler {
	m := s.auth.Middleware()
	requireUser := RequireUser(s.lookup)
	return func(next http.Handler) http.Handler {
		return m.Trace(requireUser(next))
	}
}

// Logout clears the session cookies.
func (s *Service) Logout(w http.ResponseWriter) {
	s.auth.TokenService().Reset(w)
}

// RequireUser loads the account named by the verified token into the request context.
func RequireUser(lookup UserLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			info, err := token.GetUserInfo(r)
			if err != nil || strings.TrimSpace(info.Name) == "" {
				writeUnauthorized(w)
				return
			}

			user, err := lookup.GetByEmail(r.Context(), info.Name)
			if err != nil {
				log.Printf("[auth] session for %q has no account: %v", info.Name, err)
				writeUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Not authenticated"})
}
