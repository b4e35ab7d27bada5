package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/clockwise/timesheet-api/internal/core/domain"
)

func TestReportService_Build(t *testing.T) {
	jobs := newStubJobRepo()
	entries := newStubEntryRepo()

	_, _ = jobs.Insert(context.Background(), &domain.Job{
		Owner: "alice", Name: "A", Date: "2024-01-01",
		SalaryType: domain.SalaryTypeHourly, SalaryAmount: 10,
	})
	_, _ = entries.Insert(context.Background(), &domain.DailyEntry{
		Owner: "alice", JobName: "A", Date: "2024-05-01",
		StartTime: "09:00", EndTime: "12:00", TotalHours: 3,
	})

	svc := NewReportService(jobs, entries, zerolog.Nop())
	svc.now = func() time.Time {
		return time.Date(2024, time.May, 20, 12, 0, 0, 0, time.UTC)
	}

	report, err := svc.Build(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if len(report.Entries) != 1 {
		t.Fatalf("expected 1 report entry, got %d", len(report.Entries))
	}
	if got := report.Entries[0].CalculatedSalary; got != 30 {
		t.Fatalf("expected salary 30.00 for 3h at rate 10, got %v", got)
	}
	if got := report.MonthlyHoursByJob["A"]["2024-05"]; got != 3 {
		t.Fatalf("expected 3 hours for A in 2024-05, got %v", got)
	}
	if got := report.CurrentMonthDayCountByJob["A"]; got != 1 {
		t.Fatalf("expected 1 current-month day for A, got %d", got)
	}
}

func TestReportService_Build_OwnerIsolation(t *testing.T) {
	jobs := newStubJobRepo()
	entries := newStubEntryRepo()

	_, _ = entries.Insert(context.Background(), &domain.DailyEntry{
		Owner: "bob", JobName: "A", Date: "2024-05-01", TotalHours: 8,
	})

	svc := NewReportService(jobs, entries, zerolog.Nop())

	report, err := svc.Build(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(report.Entries) != 0 {
		t.Fatalf("another owner's entries leaked into the report: %+v", report.Entries)
	}
}

func TestReportService_Build_ListFailure(t *testing.T) {
	jobs := newStubJobRepo()
	jobs.listErr = context.DeadlineExceeded

	svc := NewReportService(jobs, newStubEntryRepo(), zerolog.Nop())

	if _, err := svc.Build(context.Background(), "alice"); err == nil {
		t.Fatalf("expected error when job listing fails")
	}
}
