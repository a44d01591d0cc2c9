package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ahassan/unisync/internal/app/models"
)

func testCodec() Codec {
	c := NewCodec("Fall 2025")
	c.Now = func() time.Time {
		return time.Date(2026, time.February, 1, 10, 0, 0, 0, time.UTC)
	}
	return c
}

func TestCourseRoundTrip(t *testing.T) {
	c := testCodec()

	course := models.Course{
		ID:         "c1",
		Code:       "CS101",
		Name:       "Intro to Computer Science",
		Instructor: "Dr. Okafor",
		Schedule:   "MWF 10:00",
		Location:   "Hall B",
		Color:      "#FF8800",
	}

	got := c.DecodeCourse(c.EncodeCourse(course))
	assert.Equal(t, course, got)
}

func TestDecodeCourseDefaults(t *testing.T) {
	c := testCodec()

	got := c.DecodeCourse(Document{"name": "Algebra"})
	assert.NotEmpty(t, got.ID, "absent id gets generated")
	assert.Equal(t, "Algebra", got.Name)
	assert.Equal(t, "#000000", got.Color)
}

func TestAssignmentRoundTrip(t *testing.T) {
	c := testCodec()

	due := time.Date(2026, time.March, 15, 23, 59, 0, 0, time.UTC)
	a := models.Assignment{
		ID:       "a1",
		Title:    "Problem set 3",
		CourseID: "c1",
		DueDate:  due,
		Notes:    "chapters 4-5",
		Priority: models.PriorityHigh,
	}

	got := c.DecodeAssignment(c.EncodeAssignment(a))
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, a.Title, got.Title)
	assert.True(t, got.DueDate.Equal(due), "due date survives the epoch round trip")
	assert.Equal(t, models.PriorityHigh, got.Priority)
}

func TestDecodeAssignmentEpochAsFloat(t *testing.T) {
	// jsonb round trips numbers back as float64.
	c := testCodec()
	due := time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)

	got := c.DecodeAssignment(Document{
		"id":      "a1",
		"title":   "Reading",
		"dueDate": float64(due.Unix()),
	})
	assert.True(t, got.DueDate.Equal(due))
}

func TestDecodeAssignmentDefaults(t *testing.T) {
	c := testCodec()

	got := c.DecodeAssignment(Document{
		"id":       "a1",
		"title":    "Reading",
		"priority": "urgent",
	})

	assert.Equal(t, models.PriorityMedium, got.Priority, "unknown priority falls back to medium")
	assert.True(t, got.DueDate.Equal(c.Now()), "absent due date falls back to the codec clock")
	assert.False(t, got.Completed)
}

func TestStudyGoalRoundTrip(t *testing.T) {
	c := testCodec()

	g := models.StudyGoal{
		ID:             "g1",
		Title:          "Read 5 chapters",
		CourseID:       "c1",
		TargetHours:    12,
		CompletedHours: 4.5,
	}

	got := c.DecodeStudyGoal(c.EncodeStudyGoal(g))
	assert.Equal(t, g, got)
}

func TestDecodeSettingsDefaults(t *testing.T) {
	c := testCodec()

	got := c.DecodeSettings(Document{})
	assert.Equal(t, models.ThemeSystem, got.Theme)
	assert.True(t, got.NotificationsEnabled)
	assert.Equal(t, "Fall 2025", got.Semester)
}

func TestDecodeSettingsUnknownTheme(t *testing.T) {
	c := testCodec()

	got := c.DecodeSettings(Document{
		"theme":                "sepia",
		"notificationsEnabled": false,
		"semester":             "Spring 2026",
	})
	assert.Equal(t, models.ThemeSystem, got.Theme)
	assert.False(t, got.NotificationsEnabled)
	assert.Equal(t, "Spring 2026", got.Semester)
}

func TestDefaultSettings(t *testing.T) {
	c := testCodec()
	assert.Equal(t, c.DecodeSettings(Document{}), c.DefaultSettings())
}
