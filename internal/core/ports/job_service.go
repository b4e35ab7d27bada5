package ports

import (
	"context"

	"github.com/clockwise/timesheet-api/internal/core/domain"
)

// JobInput carries the mutable fields of a job as submitted by the user.
type JobInput struct {
	Name         string
	Date         string
	SalaryType   string
	SalaryAmount float64
}

// JobService defines use-case operations on job definitions. The owner
// argument is the authenticated principal; every operation is scoped to
// it.
type JobService interface {
	Add(ctx context.Context, owner string, in JobInput) (*domain.Job, error)
	Update(ctx context.Context, owner, id string, in JobInput) (*domain.Job, error)
	Delete(ctx context.Context, owner, id string) error
	List(ctx context.Context, owner string) ([]domain.Job, error)
}
