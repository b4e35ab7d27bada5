package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/clockwise/timesheet-api/internal/api/metrics"
	"github.com/clockwise/timesheet-api/internal/core/domain"
	"github.com/clockwise/timesheet-api/internal/core/ports"
)

// JobService implements CRUD on job definitions.
type JobService struct {
	repo  ports.JobRepository
	audit ports.ActivityDispatcher
	log   zerolog.Logger
}

func NewJobService(repo ports.JobRepository, audit ports.ActivityDispatcher, log zerolog.Logger) *JobService {
	return &JobService{repo: repo, audit: audit, log: log}
}

// Add creates a job for owner. Names are trimmed before the uniqueness
// check, which is case-sensitive: " Tutoring " collides with "Tutoring"
// but not with "tutoring".
func (s *JobService) Add(ctx context.Context, owner string, in ports.JobInput) (*domain.Job, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateJobInput(in); err != nil {
		return nil, err
	}

	// Friendly pre-check; the (owner, name) unique index is the backstop
	// against concurrent submissions.
	if _, err := s.repo.FindByName(ctx, owner, in.Name); err == nil {
		return nil, domain.ErrDuplicateJob
	} else if !errors.Is(err, domain.ErrJobNotFound) {
		return nil, err
	}

	job := &domain.Job{
		Owner:        owner,
		Name:         in.Name,
		Date:         in.Date,
		SalaryType:   in.SalaryType,
		SalaryAmount: in.SalaryAmount,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, job)
	if err != nil {
		return nil, err
	}

	metrics.JobMutationsTotal.WithLabelValues("created").Inc()
	s.record(owner, domain.ActionJobCreated, created.Name)
	s.log.Info().Str("owner", owner).Str("job", created.Name).Msg("job created")
	return created, nil
}

// Update overwrites the mutable fields of a job owned by owner. The
// identifier and creation timestamp are preserved.
func (s *JobService) Update(ctx context.Context, owner, id string, in ports.JobInput) (*domain.Job, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateJobInput(in); err != nil {
		return nil, err
	}

	job, err := s.repo.FindByID(ctx, id, owner)
	if err != nil {
		return nil, err
	}

	job.Name = in.Name
	job.Date = in.Date
	job.SalaryType = in.SalaryType
	job.SalaryAmount = in.SalaryAmount

	if err := s.repo.Update(ctx, job); err != nil {
		return nil, err
	}

	metrics.JobMutationsTotal.WithLabelValues("updated").Inc()
	s.record(owner, domain.ActionJobUpdated, job.Name)
	return job, nil
}

// Delete removes a job owned by owner. A missing or foreign id yields
// domain.ErrJobNotFound.
func (s *JobService) Delete(ctx context.Context, owner, id string) error {
	job, err := s.repo.FindByID(ctx, id, owner)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id, owner); err != nil {
		return err
	}

	metrics.JobMutationsTotal.WithLabelValues("deleted").Inc()
	s.record(owner, domain.ActionJobDeleted, job.Name)
	return nil
}

func (s *JobService) List(ctx context.Context, owner string) ([]domain.Job, error) {
	return s.repo.List(ctx, owner)
}

func (s *JobService) record(owner, action, subject string) {
	s.audit.Enqueue(domain.ActivityEvent{
		Username:  owner,
		Action:    action,
		Subject:   subject,
		Timestamp: time.Now().UTC(),
	})
}

func validateJobInput(in ports.JobInput) error {
	if in.Name == "" {
		return fmt.Errorf("%w: job name is required", domain.ErrValidation)
	}
	if in.Date == "" {
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if _, err := time.Parse(domain.DateLayout, in.Date); err != nil {
		return fmt.Errorf("%w: date %q", domain.ErrValidation, in.Date)
	}
	if in.SalaryType == "" {
		return fmt.Errorf("%w: salary type is required", domain.ErrValidation)
	}
	if in.SalaryAmount < 0 {
		return fmt.Errorf("%w: salary amount must be non-negative", domain.ErrValidation)
	}
	return nil
}
