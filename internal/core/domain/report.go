package domain

import "time"

// ReportEntry is a daily entry annotated with the salary it earned,
// derived from the owning job's rate at report time.
type ReportEntry struct {
	DailyEntry
	CalculatedSalary float64 `json:"calculated_salary"`
}

// Report is the on-demand aggregation of a user's jobs and entries.
// It is derived fresh on every call and never persisted.
type Report struct {
	Jobs    []Job         `json:"jobs"`
	Entries []ReportEntry `json:"entries"`
	// MonthlyHoursByJob maps job name -> "YYYY-MM" -> summed hours.
	MonthlyHoursByJob map[string]map[string]float64 `json:"monthly_hours_by_job"`
	// CurrentMonthDayCountByJob counts entries dated in the calendar
	// month of `now` as passed to BuildReport.
	CurrentMonthDayCountByJob map[string]int `json:"current_month_day_count_by_job"`
}

// BuildReport aggregates jobs and entries into a Report. Rates are looked
// up by job name, last write wins; an entry whose job name matches no job
// earns a rate of zero. "Current month" is taken from now, which callers
// evaluate fresh per report.
func BuildReport(jobs []Job, entries []DailyEntry, now time.Time) Report {
	rates := make(map[string]float64, len(jobs))
	for _, j := range jobs {
		rates[j.Name] = j.SalaryAmount
	}

	report := Report{
		Jobs:                      jobs,
		Entries:                   make([]ReportEntry, 0, len(entries)),
		MonthlyHoursByJob:         make(map[string]map[string]float64),
		CurrentMonthDayCountByJob: make(map[string]int),
	}

	for _, e := range entries {
		report.Entries = append(report.Entries, ReportEntry{
			DailyEntry:       e,
			CalculatedSalary: Round2(e.TotalHours * rates[e.JobName]),
		})

		day, err := time.Parse(DateLayout, e.Date)
		if err != nil {
			continue // unparseable dates are excluded from the groupings
		}

		month := day.Format("2006-01")
		if report.MonthlyHoursByJob[e.JobName] == nil {
			report.MonthlyHoursByJob[e.JobName] = make(map[string]float64)
		}
		report.MonthlyHoursByJob[e.JobName][month] += e.TotalHours

		if day.Year() == now.Year() && day.Month() == now.Month() {
			report.CurrentMonthDayCountByJob[e.JobName]++
		}
	}

	return report
}
