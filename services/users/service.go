package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"moviefinder/internal/database"
	"moviefinder/models"
)

var (
	ErrCredentialsRequired = errors.New("email and password are required")
	ErrUserExists          = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserNotFound        = errors.New("user not found")
)

type store interface {
	Create(ctx context.Context, email, passwordHash string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
}

var _ store = (*database.UserRepository)(nil)

// Service manages account registration and password checks.
type Service struct {
	store store
	cost  int
}

// NewService creates a users service. A cost outside bcrypt's range uses bcrypt.DefaultCost.
func NewService(store store, bcryptCost int) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{store: store, cost: bcryptCost}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, email, password string) (models.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return models.User{}, ErrCredentialsRequired
	}

	if _, err := s.store.GetByEmail(ctx, email); err == nil {
		return models.User{}, ErrUserExists
	} else if !errors.Is(err, database.ErrNotFound) {
		return models.User{}, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.store.Create(ctx, email, string(hash))
	if errors.Is(err, database.ErrDuplicate) {
		return models.User{}, ErrUserExists
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate returns the account when the password matches.
func (s *Service) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := s.store.GetByEmail(ctx, email)
	if errors.Is(err, database.ErrNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}
	if !user.HasPassword() {
		return models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// CheckPassword reports whether the credentials are valid. Only storage
// failures are returned as errors.
func (s *Service) CheckPassword(ctx context.Context, email, password string) (bool, error) {
	_, err := s.Authenticate(ctx, email, password)
	if errors.Is(err, ErrInvalidCredentials) {
		return false, nil
	}
	return err == nil, err
}

func (s *Service) GetByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := s.store.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, database.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

func (s *Service) Get(ctx context.Context, id int64) (models.User, error) {
	user, err := s.store.GetByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}
