package models

// StudyGoal tracks study hours logged against a target.
// CompletedHours never exceeds TargetHours; the clamp is enforced by
// the mutation operation, not by construction.
type StudyGoal struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	CourseID       string  `json:"courseId"`
	TargetHours    float64 `json:"targetHours"`
	CompletedHours float64 `json:"completedHours"`
}
