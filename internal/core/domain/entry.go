package domain

import (
	"errors"
	"time"
)

var ErrEntryNotFound = errors.New("entry not found")
var ErrDuplicateEntry = errors.New("entry already exists for this job and date")
var ErrEntryDateNotToday = errors.New("only today's date may be entered")

// DailyEntry is one logged shift against a job. JobName is a denormalized
// reference to Job.Name, not a foreign key; at most one entry exists per
// (owner, job name, date).
type DailyEntry struct {
	ID         string    `json:"id"`
	Owner      string    `json:"owner"`
	JobName    string    `json:"job_name"`
	Date       string    `json:"date"`       // YYYY-MM-DD
	StartTime  string    `json:"start_time"` // HH:MM
	EndTime    string    `json:"end_time"`   // HH:MM
	TotalHours float64   `json:"total_hours"`
	CreatedAt  time.Time `json:"created_at"`
}
