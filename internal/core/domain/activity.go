package domain

import "time"

// Activity actions recorded in the audit trail.
const (
	ActionJobCreated   = "job.created"
	ActionJobUpdated   = "job.updated"
	ActionJobDeleted   = "job.deleted"
	ActionEntryCreated = "entry.created"
	ActionEntryUpdated = "entry.updated"
	ActionEntryDeleted = "entry.deleted"
)

// ActivityEvent is one audit record of a mutation performed by a user.
type ActivityEvent struct {
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	Subject   string    `json:"subject"` // job name or entry job name + date
	Timestamp time.Time `json:"timestamp"`
}
