package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/clockwise/timesheet-api/internal/api/metrics"
	"github.com/clockwise/timesheet-api/internal/core/domain"
	"github.com/clockwise/timesheet-api/internal/core/ports"
)

// EntryService implements CRUD on daily entries. With restrictToToday set
// only entries dated the current UTC day are accepted; the flag defaults
// to off.
type EntryService struct {
	repo            ports.EntryRepository
	audit           ports.ActivityDispatcher
	restrictToToday bool
	now             func() time.Time
	log             zerolog.Logger
}

func NewEntryService(repo ports.EntryRepository, audit ports.ActivityDispatcher, restrictToToday bool, log zerolog.Logger) *EntryService {
	return &EntryService{
		repo:            repo,
		audit:           audit,
		restrictToToday: restrictToToday,
		now:             time.Now,
		log:             log,
	}
}

// Add logs a shift for owner. At most one entry may exist per
// (owner, job name, date); the total hours are always computed from the
// submitted times.
func (s *EntryService) Add(ctx context.Context, owner string, in ports.EntryInput) (*domain.DailyEntry, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	hours, err := domain.ShiftHours(in.Date, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	// Friendly pre-check; the (owner, job_name, date) unique index is the
	// backstop against concurrent submissions.
	if _, err := s.repo.FindByJobAndDate(ctx, owner, in.JobName, in.Date); err == nil {
		return nil, domain.ErrDuplicateEntry
	} else if !errors.Is(err, domain.ErrEntryNotFound) {
		return nil, err
	}

	entry := &domain.DailyEntry{
		Owner:      owner,
		JobName:    in.JobName,
		Date:       in.Date,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		TotalHours: hours,
		CreatedAt:  s.now().UTC(),
	}

	created, err := s.repo.Insert(ctx, entry)
	if err != nil {
		return nil, err
	}

	metrics.EntryMutationsTotal.WithLabelValues("created").Inc()
	metrics.EntryShiftHours.Observe(hours)
	s.record(owner, domain.ActionEntryCreated, created)
	s.log.Info().Str("owner", owner).Str("job", created.JobName).Str("date", created.Date).
		Float64("hours", hours).Msg("entry logged")
	return created, nil
}

// Update overwrites the mutable fields of an entry owned by owner and
// recomputes the total hours from the new times.
func (s *EntryService) Update(ctx context.Context, owner, id string, in ports.EntryInput) (*domain.DailyEntry, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	hours, err := domain.ShiftHours(in.Date, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	entry, err := s.repo.FindByID(ctx, id, owner)
	if err != nil {
		return nil, err
	}

	entry.JobName = in.JobName
	entry.Date = in.Date
	entry.StartTime = in.StartTime
	entry.EndTime = in.EndTime
	entry.TotalHours = hours

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}

	metrics.EntryMutationsTotal.WithLabelValues("updated").Inc()
	s.record(owner, domain.ActionEntryUpdated, entry)
	return entry, nil
}

// Delete removes an entry owned by owner. A missing or foreign id yields
// domain.ErrEntryNotFound.
func (s *EntryService) Delete(ctx context.Context, owner, id string) error {
	entry, err := s.repo.FindByID(ctx, id, owner)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id, owner); err != nil {
		return err
	}

	metrics.EntryMutationsTotal.WithLabelValues("deleted").Inc()
	s.record(owner, domain.ActionEntryDeleted, entry)
	return nil
}

func (s *EntryService) List(ctx context.Context, owner string) ([]domain.DailyEntry, error) {
	return s.repo.List(ctx, owner)
}

func (s *EntryService) record(owner, action string, entry *domain.DailyEntry) {
	s.audit.Enqueue(domain.ActivityEvent{
		Username:  owner,
		Action:    action,
		Subject:   entry.JobName + " " + entry.Date,
		Timestamp: s.now().UTC(),
	})
}

func (s *EntryService) validateInput(in ports.EntryInput) error {
	if in.JobName == "" {
		return fmt.Errorf("%w: job name is required", domain.ErrValidation)
	}
	if in.Date == "" {
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if in.StartTime == "" {
		return fmt.Errorf("%w: start time is required", domain.ErrValidation)
	}
	if in.EndTime == "" {
		return fmt.Errorf("%w: end time is required", domain.ErrValidation)
	}
	if s.restrictToToday && in.Date != s.now().UTC().Format(domain.DateLayout) {
		return domain.ErrEntryDateNotToday
	}
	return nil
}
