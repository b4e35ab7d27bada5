package service

import (
	"context"

	"github.com/clockwise/timesheet-api/internal/core/domain"
	"github.com/clockwise/timesheet-api/internal/core/ports"
)

const defaultActivityLimit = 50

// ActivityService reads the audit trail for a user.
type ActivityService struct {
	repo ports.ActivityRepository
}

func NewActivityService(repo ports.ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

// Recent returns up to limit audit records for owner, newest first.
func (s *ActivityService) Recent(ctx context.Context, owner string, limit int) ([]domain.ActivityEvent, error) {
	if limit <= 0 || limit > defaultActivityLimit {
		limit = defaultActivityLimit
	}
	return s.repo.FindRecent(ctx, owner, limit)
}
