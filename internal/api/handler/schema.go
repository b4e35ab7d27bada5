package handler

import (
	"time"

	"github.com/clockwise/timesheet-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// --- Jobs ---

type jobRequest struct {
	Name         string  `json:"name"          validate:"required"`
	Date         string  `json:"date"          validate:"required,datetime=2006-01-02"`
	SalaryType   string  `json:"salary_type"   validate:"required,oneof=hourly fixed"`
	SalaryAmount float64 `json:"salary_amount" validate:"gte=0"`
}

type jobResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Date         string    `json:"date"`
	SalaryType   string    `json:"salary_type"`
	SalaryAmount float64   `json:"salary_amount"`
	CreatedAt    time.Time `json:"created_at"`
}

type listJobsResponse struct {
	Data []jobResponse `json:"data"`
}

// --- Daily entries ---

type entryRequest struct {
	JobName   string `json:"job_name"   validate:"required"`
	Date      string `json:"date"       validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time"   validate:"required,datetime=15:04"`
}

type entryResponse struct {
	ID         string    `json:"id"`
	JobName    string    `json:"job_name"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	TotalHours float64   `json:"total_hours"`
	CreatedAt  time.Time `json:"created_at"`
}

type listEntriesResponse struct {
	Data []entryResponse `json:"data"`
}

// --- Report ---

type reportEntryResponse struct {
	entryResponse
	CalculatedSalary float64 `json:"calculated_salary"`
}

type reportResponse struct {
	Jobs                      []jobResponse                 `json:"jobs"`
	Entries                   []reportEntryResponse         `json:"entries"`
	MonthlyHoursByJob         map[string]map[string]float64 `json:"monthly_hours_by_job"`
	CurrentMonthDayCountByJob map[string]int                `json:"current_month_day_count_by_job"`
}

// --- Activity ---

type activityItemResponse struct {
	Action    string    `json:"action"`
	Subject   string    `json:"subject"`
	Timestamp time.Time `json:"timestamp"`
}

type listActivityResponse struct {
	Data []activityItemResponse `json:"data"`
}

// --- Mappers ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Email: u.Email}
}

func toJobResponse(j domain.Job) jobResponse {
	return jobResponse{
		ID:           j.ID,
		Name:         j.Name,
		Date:         j.Date,
		SalaryType:   j.SalaryType,
		SalaryAmount: j.SalaryAmount,
		CreatedAt:    j.CreatedAt.UTC(),
	}
}

func toEntryResponse(e domain.DailyEntry) entryResponse {
	return entryResponse{
		ID:         e.ID,
		JobName:    e.JobName,
		Date:       e.Date,
		StartTime:  e.StartTime,
		EndTime:    e.EndTime,
		TotalHours: e.TotalHours,
		CreatedAt:  e.CreatedAt.UTC(),
	}
}

func toReportResponse(r *domain.Report) reportResponse {
	jobs := make([]jobResponse, 0, len(r.Jobs))
	for _, j := range r.Jobs {
		jobs = append(jobs, toJobResponse(j))
	}
	entries := make([]reportEntryResponse, 0, len(r.Entries))
	for _, e := range r.Entries {
		entries = append(entries, reportEntryResponse{
			entryResponse:    toEntryResponse(e.DailyEntry),
			CalculatedSalary: e.CalculatedSalary,
		})
	}
	return reportResponse{
		Jobs:                      jobs,
		Entries:                   entries,
		MonthlyHoursByJob:         r.MonthlyHoursByJob,
		CurrentMonthDayCountByJob: r.CurrentMonthDayCountByJob,
	}
}
