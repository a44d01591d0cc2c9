package models

// Course represents a course the user is enrolled in.
type Course struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Instructor string `json:"instructor"`
	Schedule   string `json:"schedule"`
	Location   string `json:"location"`
	Color      string `json:"color"` // HEX token like "#3B82F6"
}
