package models

import "time"

const (
	ActionCreated       = "created"
	ActionUpdated       = "updated"
	ActionCompleted     = "completed"
	ActionStatusChanged = "status_changed"
	ActionDeleted       = "deleted"
)

// ActivityLogEntry is an immutable audit record of one change to a task.
// OldValue and NewValue are set only for the "updated" and "status_changed"
// actions; they carry the old/new title or the old/new status string.
type ActivityLogEntry struct {
	ID        string
	TaskID    string
	Action    string
	Timestamp time.Time
	OldValue  *string
	NewValue  *string
}
