package ports

import (
	"context"

	"github.com/clockwise/timesheet-api/internal/core/domain"
)

// ActivityRepository persists and reads the audit trail.
type ActivityRepository interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
	// FindRecent returns up to limit events for owner, newest first.
	FindRecent(ctx context.Context, owner string, limit int) ([]domain.ActivityEvent, error)
}

// ActivityDispatcher accepts audit events for asynchronous recording.
// Enqueue must not block request handling beyond channel backpressure and
// never surfaces recording failures to the caller.
type ActivityDispatcher interface {
	Enqueue(event domain.ActivityEvent)
}

// ActivityService reads the audit trail for the authenticated owner.
type ActivityService interface {
	Recent(ctx context.Context, owner string, limit int) ([]domain.ActivityEvent, error)
}
