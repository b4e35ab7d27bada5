package ports

import (
	"context"

	"github.com/clockwise/timesheet-api/internal/core/domain"
)

// EntryInput carries a submitted shift. TotalHours is always computed
// server-side from the date and clock times, never accepted from input.
type EntryInput struct {
	JobName   string
	Date      string
	StartTime string
	EndTime   string
}

// EntryService defines use-case operations on daily entries, scoped to
// the authenticated owner.
type EntryService interface {
	Add(ctx context.Context, owner string, in EntryInput) (*domain.DailyEntry, error)
	Update(ctx context.Context, owner, id string, in EntryInput) (*domain.DailyEntry, error)
	Delete(ctx context.Context, owner, id string) error
	List(ctx context.Context, owner string) ([]domain.DailyEntry, error)
}
