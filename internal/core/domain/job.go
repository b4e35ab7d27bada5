package domain

import (
	"errors"
	"time"
)

// Salary types are stored as given; the report only multiplies rate by
// hours, so the distinction carries no arithmetic weight.
const (
	SalaryTypeHourly = "hourly"
	SalaryTypeFixed  = "fixed"
)

var ErrJobNotFound = errors.New("job not found")
var ErrDuplicateJob = errors.New("job name already exists for this user")

// Job is a named pay-rate definition owned by a single user. Name is
// unique per owner, case-sensitive, compared after trimming.
type Job struct {
	ID           string    `json:"id"`
	Owner        string    `json:"owner"`
	Name         string    `json:"name"`
	Date         string    `json:"date"` // YYYY-MM-DD, the day the job was added
	SalaryType   string    `json:"salary_type"`
	SalaryAmount float64   `json:"salary_amount"`
	CreatedAt    time.Time `json:"created_at"`
}
