package store

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/ahassan/unisync/internal/app/models"
)

// Codec converts entities to and from store documents. Decoding is
// lenient: absent or malformed fields fall back to their documented
// defaults instead of failing the read.
type Codec struct {
	// DefaultSemester is the fallback for an absent settings semester.
	DefaultSemester string
	// Now supplies the fallback for an absent assignment due date.
	Now func() time.Time
}

// NewCodec creates a Codec with the wall clock.
func NewCodec(defaultSemester string) Codec {
	return Codec{DefaultSemester: defaultSemester, Now: time.Now}
}

// EncodeCourse encodes a course document.
func (c Codec) EncodeCourse(course models.Course) Document {
	return Document{
		"id":         course.ID,
		"code":       course.Code,
		"name":       course.Name,
		"instructor": course.Instructor,
		"schedule":   course.Schedule,
		"location":   course.Location,
		"color":      course.Color,
	}
}

// DecodeCourse decodes a course document.
func (c Codec) DecodeCourse(d Document) models.Course {
	return models.Course{
		ID:         docID(d),
		Code:       docString(d, "code"),
		Name:       docString(d, "name"),
		Instructor: docString(d, "instructor"),
		Schedule:   docString(d, "schedule"),
		Location:   docString(d, "location"),
		Color:      docStringDefault(d, "color", "#000000"),
	}
}

// EncodeAssignment encodes an assignment document. The due date is
// stored as epoch seconds.
func (c Codec) EncodeAssignment(a models.Assignment) Document {
	return Document{
		"id":        a.ID,
		"title":     a.Title,
		"courseId":  a.CourseID,
		"dueDate":   a.DueDate.Unix(),
		"notes":     a.Notes,
		"completed": a.Completed,
		"priority":  string(a.Priority),
	}
}

// DecodeAssignment decodes an assignment document. An absent or
// malformed priority decodes to medium; an absent due date decodes to
// the codec clock's "now".
func (c Codec) DecodeAssignment(d Document) models.Assignment {
	priority := models.Priority(docString(d, "priority"))
	if !priority.IsValid() {
		priority = models.PriorityMedium
	}

	dueDate, ok := docEpoch(d, "dueDate")
	if !ok {
		dueDate = c.Now()
	}

	return models.Assignment{
		ID:        docID(d),
		Title:     docString(d, "title"),
		CourseID:  docString(d, "courseId"),
		DueDate:   dueDate,
		Notes:     docString(d, "notes"),
		Completed: docBool(d, "completed", false),
		Priority:  priority,
	}
}

// EncodeStudyGoal encodes a study goal document.
func (c Codec) EncodeStudyGoal(g models.StudyGoal) Document {
	return Document{
		"id":             g.ID,
		"title":          g.Title,
		"courseId":       g.CourseID,
		"targetHours":    g.TargetHours,
		"completedHours": g.CompletedHours,
	}
}

// DecodeStudyGoal decodes a study goal document.
func (c Codec) DecodeStudyGoal(d Document) models.StudyGoal {
	return models.StudyGoal{
		ID:             docID(d),
		Title:          docString(d, "title"),
		CourseID:       docString(d, "courseId"),
		TargetHours:    docFloat(d, "targetHours"),
		CompletedHours: docFloat(d, "completedHours"),
	}
}

// EncodeSettings encodes the settings singleton document. Settings
// carry no id field; the document lives under SettingsDocID.
func (c Codec) EncodeSettings(s models.Settings) Document {
	return Document{
		"theme":                string(s.Theme),
		"notificationsEnabled": s.NotificationsEnabled,
		"semester":             s.Semester,
	}
}

// DecodeSettings decodes the settings singleton document.
func (c Codec) DecodeSettings(d Document) models.Settings {
	theme := models.Theme(docString(d, "theme"))
	if !theme.IsValid() {
		theme = models.ThemeSystem
	}

	return models.Settings{
		Theme:                theme,
		NotificationsEnabled: docBool(d, "notificationsEnabled", true),
		Semester:             docStringDefault(d, "semester", c.DefaultSemester),
	}
}

// DefaultSettings returns the settings value an empty document decodes
// to.
func (c Codec) DefaultSettings() models.Settings {
	return c.DecodeSettings(Document{})
}

func docID(d Document) string {
	if id := docString(d, "id"); id != "" {
		return id
	}
	return uuid.NewString()
}

func docString(d Document, key string) string {
	if v, ok := d[key].(string); ok {
		return v
	}
	return ""
}

func docStringDefault(d Document, key, def string) string {
	if v, ok := d[key].(string); ok && v != "" {
		return v
	}
	return def
}

func docBool(d Document, key string, def bool) bool {
	if v, ok := d[key].(bool); ok {
		return v
	}
	return def
}

func docFloat(d Document, key string) float64 {
	switch v := d[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

// docEpoch reads an epoch-seconds field. Documents round-tripped
// through jsonb come back with numbers as float64.
func docEpoch(d Document, key string) (time.Time, bool) {
	switch v := d[key].(type) {
	case int64:
		return time.Unix(v, 0), true
	case int:
		return time.Unix(int64(v), 0), true
	case float64:
		return time.Unix(int64(v), 0), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return time.Time{}, false
		}
		return time.Unix(n, 0), true
	}
	return time.Time{}, false
}
