package models

import "time"

// Project belongs to one user. StartDate is server-assigned; EndDate is
// whatever the user typed and stays free text.
type Project struct {
	ID          int64
	OwnerEmail  string
	Title       string
	Description string
	StartDate   time.Time
	EndDate     string
}

func (p Project) StartDateText() string {
	return p.StartDate.Format(TimestampLayout)
}

// ProjectComment is a note left on a project by a user.
type ProjectComment struct {
	ID          int64
	ProjectID   int64
	AuthorEmail string
	Comment     string
}
