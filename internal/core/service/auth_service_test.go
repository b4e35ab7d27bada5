package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/clockwise/timesheet-api/internal/core/domain"
)

type stubUserRepo struct {
	byEmail map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	clone := *user
	clone.ID = "user-" + user.Username
	r.byEmail[clone.Email] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

type stubSessions struct {
	active  map[string]string // session id -> username
	putErr  error
	deleted []string
}

func newStubSessions() *stubSessions {
	return &stubSessions{active: make(map[string]string)}
}

func (s *stubSessions) Put(_ context.Context, sessionID, username string) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.active[sessionID] = username
	return nil
}

func (s *stubSessions) Delete(_ context.Context, sessionID string) error {
	delete(s.active, sessionID)
	s.deleted = append(s.deleted, sessionID)
	return nil
}

func newAuthSvc(repo *stubUserRepo, sessions *stubSessions) *AuthService {
	return NewAuthService(repo, sessions, "secret", time.Hour, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo(), newStubSessions())

	user, err := svc.Register(context.Background(), "alice", "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected identifier on created user")
	}
	if user.PasswordHash == "pw1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw1")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo(), newStubSessions())

	cases := [][3]string{
		{"", "a@x.com", "pw"},
		{"alice", "", "pw"},
		{"alice", "a@x.com", ""},
	}
	for _, c := range cases {
		if _, err := svc.Register(context.Background(), c[0], c[1], c[2]); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("Register(%q, %q, %q): expected ErrValidation, got %v", c[0], c[1], c[2], err)
		}
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo, newStubSessions())

	first, err := svc.Register(context.Background(), "alice", "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	if _, err := svc.Register(context.Background(), "mallory", "a@x.com", "pw2"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// First user's record is unaffected.
	stored, err := repo.FindByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if stored.Username != first.Username {
		t.Fatalf("original record was clobbered: %+v", stored)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessions()
	svc := newAuthSvc(repo, sessions)

	if _, err := svc.Register(context.Background(), "alice", "a@x.com", "pw1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected principal: %q", user.Username)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["username"] != "alice" {
		t.Fatalf("expected username claim alice, got %v", claims["username"])
	}

	sid, _ := claims["sid"].(string)
	if sid == "" {
		t.Fatalf("expected session id claim")
	}
	if sessions.active[sid] != "alice" {
		t.Fatalf("expected session record for alice, got %v", sessions.active)
	}
}

func TestAuthService_Login_NoUserEnumeration(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo, newStubSessions())

	if _, err := svc.Register(context.Background(), "alice", "a@x.com", "pw1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Wrong password and unknown email must be indistinguishable.
	_, _, errBadPass := svc.Login(context.Background(), "a@x.com", "wrong")
	_, _, errNoUser := svc.Login(context.Background(), "ghost@x.com", "pw1")

	if !errors.Is(errBadPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errBadPass)
	}
	if !errors.Is(errNoUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errNoUser)
	}
	if errBadPass.Error() != errNoUser.Error() {
		t.Fatalf("error messages differ: %q vs %q", errBadPass, errNoUser)
	}
}

func TestAuthService_Logout_RevokesSession(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessions()
	svc := newAuthSvc(repo, sessions)

	_, _ = svc.Register(context.Background(), "alice", "a@x.com", "pw1")
	token, _, err := svc.Login(context.Background(), "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}
	sid := claims["sid"].(string)

	if err := svc.Logout(context.Background(), sid); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, ok := sessions.active[sid]; ok {
		t.Fatalf("session still active after logout")
	}

	// Logging out twice is a no-op.
	if err := svc.Logout(context.Background(), sid); err != nil {
		t.Fatalf("second logout should be a no-op, got %v", err)
	}
}
