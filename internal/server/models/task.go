package models

import "time"

// TimestampLayout is how server-assigned timestamps are shown to users.
const TimestampLayout = "2006-01-02 15:04:05"

// Task belongs to exactly one user through OwnerEmail. CreatedAt is set by
// the server on insert and never updated.
type Task struct {
	ID          int64
	OwnerEmail  string
	Title       string
	Description string
	CreatedAt   time.Time
}

// CreatedAtText formats CreatedAt for templates.
func (t Task) CreatedAtText() string {
	return t.CreatedAt.Format(TimestampLayout)
}
