package dto

// UpdateSettingsRequest represents the full settings document
type UpdateSettingsRequest struct {
	Theme                string `json:"theme" binding:"required,oneof=light dark system"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	Semester             string `json:"semester"`
}
