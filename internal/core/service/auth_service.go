package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/clockwise/timesheet-api/internal/api/metrics"
	"github.com/clockwise/timesheet-api/internal/core/domain"
	"github.com/clockwise/timesheet-api/internal/core/ports"
)

// SessionStore abstracts the server-side session records (Redis). A login
// writes a record keyed by session id; logout deletes it; the auth
// middleware checks liveness on every request.
type SessionStore interface {
	Put(ctx context.Context, sessionID, username string) error
	Delete(ctx context.Context, sessionID string) error
}

// AuthService implements registration, login, and logout.
type AuthService struct {
	repo       ports.UserRepository
	sessions   SessionStore
	jwtSecret  string
	sessionTTL time.Duration
	log        zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, sessions SessionStore, jwtSecret string, sessionTTL time.Duration, log zerolog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, sessions: sessions, jwtSecret: jwtSecret, sessionTTL: sessionTTL, log: log}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.log.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login verifies credentials and opens a session. Unknown emails and wrong
// passwords produce the same error so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	if err := s.sessions.Put(ctx, sessionID, user.Username); err != nil {
		return "", nil, fmt.Errorf("open session: %w", err)
	}

	token, err := s.signToken(user.Username, sessionID)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("username", user.Username).Msg("login")
	return token, user, nil
}

// Logout revokes the session record. Revoking an already absent session
// is not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

func (s *AuthService) signToken(username, sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"sid":      sessionID,
		"exp":      time.Now().Add(s.sessionTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
