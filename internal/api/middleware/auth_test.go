package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "secret"

type stubSessionChecker struct {
	active map[string]bool
	err    error
}

func (s *stubSessionChecker) Active(_ context.Context, sessionID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.active[sessionID], nil
}

func signTestToken(t *testing.T, secret, username, sid string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"sid":      sid,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runAuth(t *testing.T, sessions *stubSessionChecker, authorization string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(testSecret, sessions)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func TestAuth_ValidTokenActiveSession(t *testing.T) {
	sessions := &stubSessionChecker{active: map[string]bool{"sid-1": true}}
	token := signTestToken(t, testSecret, "alice", "sid-1")

	c, err := runAuth(t, sessions, "Bearer "+token)
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}
	if got, _ := c.Get("username").(string); got != "alice" {
		t.Fatalf("expected principal alice in context, got %v", c.Get("username"))
	}
	if got, _ := c.Get("sid").(string); got != "sid-1" {
		t.Fatalf("expected session id in context, got %v", c.Get("sid"))
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := runAuth(t, &stubSessionChecker{}, "")
	assertHTTPCode(t, err, http.StatusUnauthorized)
}

func TestAuth_BadScheme(t *testing.T) {
	token := signTestToken(t, testSecret, "alice", "sid-1")
	_, err := runAuth(t, &stubSessionChecker{}, "Basic "+token)
	assertHTTPCode(t, err, http.StatusUnauthorized)
}

func TestAuth_WrongSignature(t *testing.T) {
	token := signTestToken(t, "other-secret", "alice", "sid-1")
	_, err := runAuth(t, &stubSessionChecker{}, "Bearer "+token)
	assertHTTPCode(t, err, http.StatusUnauthorized)
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "alice",
		"sid":      "sid-1",
		"exp":      time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	_, err = runAuth(t, &stubSessionChecker{active: map[string]bool{"sid-1": true}}, "Bearer "+signed)
	assertHTTPCode(t, err, http.StatusUnauthorized)
}

func TestAuth_RevokedSession(t *testing.T) {
	// Signature is valid but the session record is gone: logged out.
	sessions := &stubSessionChecker{active: map[string]bool{}}
	token := signTestToken(t, testSecret, "alice", "sid-1")

	_, err := runAuth(t, sessions, "Bearer "+token)
	assertHTTPCode(t, err, http.StatusUnauthorized)
}

func TestAuth_SessionStoreDown(t *testing.T) {
	sessions := &stubSessionChecker{err: errors.New("redis down")}
	token := signTestToken(t, testSecret, "alice", "sid-1")

	_, err := runAuth(t, sessions, "Bearer "+token)
	assertHTTPCode(t, err, http.StatusServiceUnavailable)
}

func assertHTTPCode(t *testing.T, err error, want int) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != want {
		t.Fatalf("expected status %d, got %d (%v)", want, he.Code, he.Message)
	}
}
