package ports

import (
	"context"

	"github.com/clockwise/timesheet-api/internal/core/domain"
)

// ReportService derives the salary and grouping report for a user.
type ReportService interface {
	Build(ctx context.Context, owner string) (*domain.Report, error)
}
