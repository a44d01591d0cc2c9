package models

import "time"

// Priority indicates how urgent an assignment is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid reports whether p is one of the known priority tags.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Assignment represents a graded task with a due date.
// CourseID is a soft reference to Course.ID; dangling references are
// tolerated and simply fail to resolve a course name.
type Assignment struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CourseID  string    `json:"courseId"`
	DueDate   time.Time `json:"dueDate"`
	Notes     string    `json:"notes"`
	Completed bool      `json:"completed"`
	Priority  Priority  `json:"priority"`
}
