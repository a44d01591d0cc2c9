package dto

import "time"

// CreateAssignmentRequest represents assignment creation data. A past
// due date is accepted; it simply produces no reminders.
type CreateAssignmentRequest struct {
	Title    string    `json:"title" binding:"required"`
	CourseID string    `json:"courseId" binding:"required"`
	DueDate  time.Time `json:"dueDate" binding:"required"`
	Notes    string    `json:"notes"`
	Priority string    `json:"priority" binding:"omitempty,oneof=low medium high"`
}

// UpdateAssignmentRequest represents assignment update data
type UpdateAssignmentRequest struct {
	Title    string    `json:"title" binding:"required"`
	CourseID string    `json:"courseId" binding:"required"`
	DueDate  time.Time `json:"dueDate" binding:"required"`
	Notes    string    `json:"notes"`
	Priority string    `json:"priority" binding:"omitempty,oneof=low medium high"`
}
