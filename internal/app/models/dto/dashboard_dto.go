package dto

import "github.com/ahassan/unisync/internal/app/models"

// DashboardResponse carries the aggregated projections.
type DashboardResponse struct {
	CourseCount  int                 `json:"courseCount"`
	PendingCount int                 `json:"pendingCount"`
	GoalCount    int                 `json:"goalCount"`
	TotalHours   float64             `json:"totalHours"`
	Upcoming     []UpcomingTask      `json:"upcoming"`
	Pending      []models.Assignment `json:"pending"`
}

// UpcomingTask is a pending assignment with its course name resolved.
// CourseName is empty when the course reference dangles.
type UpcomingTask struct {
	Assignment models.Assignment `json:"assignment"`
	CourseName string            `json:"courseName,omitempty"`
}
