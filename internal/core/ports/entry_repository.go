package ports

import (
	"context"

	"github.com/clockwise/timesheet-api/internal/core/domain"
)

// EntryRepository defines persistence for daily entries, scoped to the
// owning user. Insert returns domain.ErrDuplicateEntry when the
// (owner, job_name, date) unique index is violated; lookups and
// mutations that match nothing return domain.ErrEntryNotFound.
type EntryRepository interface {
	Insert(ctx context.Context, entry *domain.DailyEntry) (*domain.DailyEntry, error)
	FindByID(ctx context.Context, id, owner string) (*domain.DailyEntry, error)
	FindByJobAndDate(ctx context.Context, owner, jobName, date string) (*domain.DailyEntry, error)
	List(ctx context.Context, owner string) ([]domain.DailyEntry, error)
	Update(ctx context.Context, entry *domain.DailyEntry) error
	Delete(ctx context.Context, id, owner string) error
}
