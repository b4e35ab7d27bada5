package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/clockwise/timesheet-api/internal/core/domain"
	"github.com/clockwise/timesheet-api/internal/core/ports"
)

type stubEntryRepo struct {
	entries map[string]*domain.DailyEntry // keyed by id
	nextID  int
}

func newStubEntryRepo() *stubEntryRepo {
	return &stubEntryRepo{entries: make(map[string]*domain.DailyEntry)}
}

func (r *stubEntryRepo) Insert(_ context.Context, entry *domain.DailyEntry) (*domain.DailyEntry, error) {
	for _, e := range r.entries {
		if e.Owner == entry.Owner && e.JobName == entry.JobName && e.Date == entry.Date {
			return nil, domain.ErrDuplicateEntry
		}
	}
	r.nextID++
	clone := *entry
	clone.ID = fmt.Sprintf("entry-%d", r.nextID)
	r.entries[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubEntryRepo) FindByID(_ context.Context, id, owner string) (*domain.DailyEntry, error) {
	e, ok := r.entries[id]
	if !ok || e.Owner != owner {
		return nil, domain.ErrEntryNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEntryRepo) FindByJobAndDate(_ context.Context, owner, jobName, date string) (*domain.DailyEntry, error) {
	for _, e := range r.entries {
		if e.Owner == owner && e.JobName == jobName && e.Date == date {
			clone := *e
			return &clone, nil
		}
	}
	return nil, domain.ErrEntryNotFound
}

func (r *stubEntryRepo) List(_ context.Context, owner string) ([]domain.DailyEntry, error) {
	var out []domain.DailyEntry
	for _, e := range r.entries {
		if e.Owner == owner {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *stubEntryRepo) Update(_ context.Context, entry *domain.DailyEntry) error {
	e, ok := r.entries[entry.ID]
	if !ok || e.Owner != entry.Owner {
		return domain.ErrEntryNotFound
	}
	clone := *entry
	r.entries[entry.ID] = &clone
	return nil
}

func (r *stubEntryRepo) Delete(_ context.Context, id, owner string) error {
	e, ok := r.entries[id]
	if !ok || e.Owner != owner {
		return domain.ErrEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

func newEntrySvc(repo *stubEntryRepo, restrictToToday bool) *EntryService {
	return NewEntryService(repo, &stubAudit{}, restrictToToday, zerolog.Nop())
}

func validEntryInput() ports.EntryInput {
	return ports.EntryInput{JobName: "Tutoring", Date: "2024-05-01", StartTime: "09:00", EndTime: "17:30"}
}

func TestEntryService_Add_ComputesHours(t *testing.T) {
	svc := newEntrySvc(newStubEntryRepo(), false)

	entry, err := svc.Add(context.Background(), "alice", validEntryInput())
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if entry.TotalHours != 8.5 {
		t.Fatalf("expected 8.5 hours, got %v", entry.TotalHours)
	}
}

func TestEntryService_Add_OvernightShift(t *testing.T) {
	svc := newEntrySvc(newStubEntryRepo(), false)

	in := validEntryInput()
	in.StartTime = "22:00"
	in.EndTime = "06:00"
	entry, err := svc.Add(context.Background(), "alice", in)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if entry.TotalHours != 8 {
		t.Fatalf("expected 8 hours across midnight, got %v", entry.TotalHours)
	}
}

func TestEntryService_Add_DuplicatePreservesFirst(t *testing.T) {
	repo := newStubEntryRepo()
	svc := newEntrySvc(repo, false)

	first, err := svc.Add(context.Background(), "alice", validEntryInput())
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}

	// Second submission for the same job and date, different times.
	in := validEntryInput()
	in.StartTime = "10:00"
	in.EndTime = "11:00"
	if _, err := svc.Add(context.Background(), "alice", in); !errors.Is(err, domain.ErrDuplicateEntry) {
		t.Fatalf("expected ErrDuplicateEntry, got %v", err)
	}

	stored, err := repo.FindByID(context.Background(), first.ID, "alice")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if stored.StartTime != "09:00" || stored.TotalHours != 8.5 {
		t.Fatalf("first submission was clobbered: %+v", stored)
	}
}

func TestEntryService_Add_SameDateDifferentJobs(t *testing.T) {
	svc := newEntrySvc(newStubEntryRepo(), false)

	if _, err := svc.Add(context.Background(), "alice", validEntryInput()); err != nil {
		t.Fatalf("first add failed: %v", err)
	}

	in := validEntryInput()
	in.JobName = "Coaching"
	if _, err := svc.Add(context.Background(), "alice", in); err != nil {
		t.Fatalf("same date under another job must be accepted, got %v", err)
	}
}

func TestEntryService_Add_Validation(t *testing.T) {
	svc := newEntrySvc(newStubEntryRepo(), false)

	bad := []ports.EntryInput{
		{JobName: "", Date: "2024-05-01", StartTime: "09:00", EndTime: "17:00"},
		{JobName: "A", Date: "", StartTime: "09:00", EndTime: "17:00"},
		{JobName: "A", Date: "2024-05-01", StartTime: "", EndTime: "17:00"},
		{JobName: "A", Date: "2024-05-01", StartTime: "09:00", EndTime: ""},
		{JobName: "A", Date: "2024-05-01", StartTime: "9am", EndTime: "17:00"},
	}
	for i, in := range bad {
		if _, err := svc.Add(context.Background(), "alice", in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
}

func TestEntryService_RestrictToToday(t *testing.T) {
	svc := newEntrySvc(newStubEntryRepo(), true)
	svc.now = func() time.Time {
		return time.Date(2024, time.May, 2, 10, 0, 0, 0, time.UTC)
	}

	// Yesterday is rejected under the policy.
	in := validEntryInput()
	in.Date = "2024-05-01"
	if _, err := svc.Add(context.Background(), "alice", in); !errors.Is(err, domain.ErrEntryDateNotToday) {
		t.Fatalf("expected ErrEntryDateNotToday, got %v", err)
	}

	in.Date = "2024-05-02"
	if _, err := svc.Add(context.Background(), "alice", in); err != nil {
		t.Fatalf("today's entry must be accepted, got %v", err)
	}
}

func TestEntryService_Update_RecomputesHours(t *testing.T) {
	repo := newStubEntryRepo()
	svc := newEntrySvc(repo, false)

	created, err := svc.Add(context.Background(), "alice", validEntryInput())
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	in := validEntryInput()
	in.StartTime = "10:00"
	in.EndTime = "12:00"
	updated, err := svc.Update(context.Background(), "alice", created.ID, in)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.TotalHours != 2 {
		t.Fatalf("expected recomputed 2 hours, got %v", updated.TotalHours)
	}
	if updated.ID != created.ID {
		t.Fatalf("identifier changed on update")
	}
}

func TestEntryService_Update_NotFound(t *testing.T) {
	svc := newEntrySvc(newStubEntryRepo(), false)

	if _, err := svc.Update(context.Background(), "alice", "missing", validEntryInput()); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestEntryService_Delete_OwnershipIsolation(t *testing.T) {
	repo := newStubEntryRepo()
	svc := newEntrySvc(repo, false)

	created, err := svc.Add(context.Background(), "alice", validEntryInput())
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := svc.Delete(context.Background(), "bob", created.ID); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound for foreign owner, got %v", err)
	}
	if _, err := repo.FindByID(context.Background(), created.ID, "alice"); err != nil {
		t.Fatalf("target entry was modified by foreign delete: %v", err)
	}

	if err := svc.Delete(context.Background(), "alice", created.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), "alice", created.ID); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound on second delete, got %v", err)
	}
}

func TestEntryService_Mutations_EmitActivity(t *testing.T) {
	repo := newStubEntryRepo()
	audit := &stubAudit{}
	svc := NewEntryService(repo, audit, false, zerolog.Nop())

	created, _ := svc.Add(context.Background(), "alice", validEntryInput())
	_, _ = svc.Update(context.Background(), "alice", created.ID, validEntryInput())
	_ = svc.Delete(context.Background(), "alice", created.ID)

	want := []string{domain.ActionEntryCreated, domain.ActionEntryUpdated, domain.ActionEntryDeleted}
	if len(audit.events) != len(want) {
		t.Fatalf("expected %d activity events, got %d", len(want), len(audit.events))
	}
	for i, action := range want {
		if audit.events[i].Action != action {
			t.Fatalf("event %d: expected %s, got %s", i, action, audit.events[i].Action)
		}
	}
}
