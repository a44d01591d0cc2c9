package models

// Theme selects the UI appearance.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// IsValid reports whether t is one of the known theme tags.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Settings is the per-user preferences singleton.
type Settings struct {
	Theme                Theme  `json:"theme"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	Semester             string `json:"semester"`
}
