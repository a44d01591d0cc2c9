package dto

// CreateGoalRequest represents study goal creation data
type CreateGoalRequest struct {
	Title       string  `json:"title" binding:"required"`
	CourseID    string  `json:"courseId" binding:"required"`
	TargetHours float64 `json:"targetHours" binding:"required,gt=0"`
}

// LogHoursRequest represents hours to log against a goal
type LogHoursRequest struct {
	Hours float64 `json:"hours" binding:"required,gt=0"`
}
