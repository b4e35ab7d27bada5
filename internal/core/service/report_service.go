package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/clockwise/timesheet-api/internal/api/metrics"
	"github.com/clockwise/timesheet-api/internal/core/domain"
	"github.com/clockwise/timesheet-api/internal/core/ports"
)

// ReportService builds the salary and grouping report from the user's
// jobs and entries. The clock is injected so "current month" is testable;
// it is read fresh on every call.
type ReportService struct {
	jobs    ports.JobRepository
	entries ports.EntryRepository
	now     func() time.Time
	log     zerolog.Logger
}

func NewReportService(jobs ports.JobRepository, entries ports.EntryRepository, log zerolog.Logger) *ReportService {
	return &ReportService{jobs: jobs, entries: entries, now: time.Now, log: log}
}

func (s *ReportService) Build(ctx context.Context, owner string) (*domain.Report, error) {
	jobs, err := s.jobs.List(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("report: list jobs: %w", err)
	}

	entries, err := s.entries.List(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("report: list entries: %w", err)
	}

	report := domain.BuildReport(jobs, entries, s.now().UTC())

	metrics.ReportsGeneratedTotal.Inc()
	s.log.Debug().Str("owner", owner).Int("jobs", len(jobs)).Int("entries", len(entries)).Msg("report built")
	return &report, nil
}
