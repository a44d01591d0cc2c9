package dto

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Code       string `json:"code" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Instructor string `json:"instructor"`
	Schedule   string `json:"schedule"`
	Location   string `json:"location"`
	Color      string `json:"color" binding:"omitempty,hexcolor"`
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest struct {
	Code       string `json:"code" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Instructor string `json:"instructor"`
	Schedule   string `json:"schedule"`
	Location   string `json:"location"`
	Color      string `json:"color" binding:"omitempty,hexcolor"`
}
