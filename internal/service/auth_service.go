// Package service implements the application's business logic on top of the
// stores.
package service

import (
	"context"
	"sync"

	"photofeed/internal/models"
	"photofeed/internal/observability"
	"photofeed/internal/store"
)

// DefaultAvatar is assigned to accounts created through registration.
const DefaultAvatar = "https://via.placeholder.com/150"

// AuthService owns the single process-wide authenticated identity.
//
// The session holds only the user id; CurrentUser resolves the record through
// the UserStore on every read, so profile edits and friend-list changes made
// elsewhere are visible immediately and no stale copy is ever surfaced.
type AuthService struct {
	userStore store.UserStore

	mu        sync.RWMutex
	currentID string
	loading   bool
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// NewAuthService returns a logged-out AuthService.
func NewAuthService(userStore store.UserStore) *AuthService {
	return &AuthService{userStore: userStore}
}

// Login authenticates by email and plain-text password comparison.
//
// Failure kinds are distinguishable by error code: VALIDATION_ERROR for a
// missing field, NOT_FOUND for an unknown email, INVALID_CREDENTIALS for a
// wrong password. Any failure clears the session slot.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	if email == "" || password == "" {
		s.clearSession()
		observability.AuthAttemptsTotal.WithLabelValues("login", "validation_error").Inc()
		return nil, models.NewValidationError("Email and password are required")
	}

	user := s.userStore.GetByEmail(ctx, email)
	if user == nil {
		s.clearSession()
		observability.AuthAttemptsTotal.WithLabelValues("login", "not_found").Inc()
		return nil, models.NewNotFoundError("User", email)
	}

	if user.Password != password {
		s.clearSession()
		observability.AuthAttemptsTotal.WithLabelValues("login", "invalid_credentials").Inc()
		return nil, models.NewInvalidCredentialsError()
	}

	s.mu.Lock()
	s.currentID = user.ID
	s.mu.Unlock()
	observability.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	return user, nil
}

// Register creates an account and logs it in.
//
// Failure kinds: VALIDATION_ERROR for a missing field, PASSWORD_MISMATCH when
// the confirmation differs, DUPLICATE_EMAIL when the email is taken. Failures
// clear the session slot and leave the user collection untouched.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	if in.Username == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" {
		s.clearSession()
		observability.AuthAttemptsTotal.WithLabelValues("register", "validation_error").Inc()
		return nil, models.NewValidationError("All fields are required")
	}
	if in.Password != in.ConfirmPassword {
		s.clearSession()
		observability.AuthAttemptsTotal.WithLabelValues("register", "password_mismatch").Inc()
		return nil, models.NewPasswordMismatchError()
	}
	if existing := s.userStore.GetByEmail(ctx, in.Email); existing != nil {
		s.clearSession()
		observability.AuthAttemptsTotal.WithLabelValues("register", "duplicate_email").Inc()
		return nil, models.NewDuplicateEmailError(in.Email)
	}

	user := s.userStore.Create(ctx, store.CreateUserInput{
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
		Avatar:   DefaultAvatar,
	})

	s.mu.Lock()
	s.currentID = user.ID
	s.mu.Unlock()
	observability.AuthAttemptsTotal.WithLabelValues("register", "success").Inc()
	return &user, nil
}

// Logout clears the session unconditionally.
func (s *AuthService) Logout(ctx context.Context) {
	s.clearSession()
}

// CurrentUser returns the latest record for the logged-in user, or nil when
// logged out or when the record has since been deleted from the store.
func (s *AuthService) CurrentUser(ctx context.Context) *models.User {
	s.mu.RLock()
	id := s.currentID
	s.mu.RUnlock()

	if id == "" {
		return nil
	}
	return s.userStore.GetByID(ctx, id)
}

// IsAuthenticated reports whether a current user resolves.
func (s *AuthService) IsAuthenticated(ctx context.Context) bool {
	return s.CurrentUser(ctx) != nil
}

// Loading reports whether a login or register call is in flight. Concurrent
// calls are not mutually excluded; the last write wins.
func (s *AuthService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *AuthService) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *AuthService) clearSession() {
	s.mu.Lock()
	s.currentID = ""
	s.mu.Unlock()
}
