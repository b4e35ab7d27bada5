package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// SessionChecker reports whether a session id is still live (Redis).
type SessionChecker interface {
	Active(ctx context.Context, sessionID string) (bool, error)
}

// Auth validates the bearer token signature, confirms the session has
// not been revoked, and injects the principal into context.
func Auth(jwtSecret string, sessions SessionChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sid, _ := claims["sid"].(string)
			if sid == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing session id")
			}

			active, err := sessions.Active(c.Request().Context(), sid)
			if err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "session store unavailable")
			}
			if !active {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired or revoked")
			}

			c.Set("username", claims["username"])
			c.Set("sid", sid)

			return next(c)
		}
	}
}
