package ports

import (
	"context"

	"github.com/clockwise/timesheet-api/internal/core/domain"
)

// JobRepository defines persistence for job definitions. Every lookup and
// mutation is scoped to the owning user; operations that match nothing
// return domain.ErrJobNotFound. Insert returns domain.ErrDuplicateJob
// when the (owner, name) unique index is violated.
type JobRepository interface {
	Insert(ctx context.Context, job *domain.Job) (*domain.Job, error)
	FindByID(ctx context.Context, id, owner string) (*domain.Job, error)
	FindByName(ctx context.Context, owner, name string) (*domain.Job, error)
	List(ctx context.Context, owner string) ([]domain.Job, error)
	Update(ctx context.Context, job *domain.Job) error
	Delete(ctx context.Context, id, owner string) error
}
