package ports

import (
	"context"

	"github.com/clockwise/timesheet-api/internal/core/domain"
)

// AuthService implements registration, login, and session revocation.
// Login returns the signed session token alongside the user.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Logout(ctx context.Context, sessionID string) error
}
