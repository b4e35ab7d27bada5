package ports

import (
	"context"

	"github.com/clockwise/timesheet-api/internal/core/domain"
)

// UserRepository defines persistence for account records. Create relies
// on a unique email index in the backing store and returns
// domain.ErrEmailTaken when the email is already registered.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
