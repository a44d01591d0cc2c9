package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ahassan/unisync/internal/app/models"
)

func testAssignment(title string, due time.Time) models.Assignment {
	return models.Assignment{
		ID:       "assignment-1",
		Title:    title,
		DueDate:  due,
		Priority: models.PriorityMedium,
	}
}

type recordedAlert struct {
	title  string
	body   string
	fireAt time.Time
}

type fakeSink struct {
	alerts []recordedAlert
}

func (s *fakeSink) ScheduleAt(title, body string, fireAt time.Time) {
	s.alerts = append(s.alerts, recordedAlert{title: title, body: body, fireAt: fireAt})
}

func (s *fakeSink) RequestPermission() {}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSchedulePreDueRemindersFullBatch(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)
	due := time.Date(2026, time.March, 30, 16, 30, 0, 0, time.Local)

	sink := &fakeSink{}
	s := NewSchedulerAt(sink, fixedClock(now))

	s.SchedulePreDueReminders(testAssignment("Essay draft", due))

	assert.Len(t, sink.alerts, 4)
	wantDays := []int{14, 7, 3, 1}
	for i, alert := range sink.alerts {
		want := time.Date(2026, time.March, 30-wantDays[i], 9, 0, 0, 0, time.Local)
		assert.Equal(t, want, alert.fireAt, "offset %d days", wantDays[i])
		assert.Equal(t, "Upcoming: Essay draft", alert.title)
	}
}

func TestSchedulePreDueRemindersSkipsElapsedOffsets(t *testing.T) {
	// Two days out: only the 1-day offset still lies in the future.
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)
	due := time.Date(2026, time.March, 12, 15, 0, 0, 0, time.Local)

	sink := &fakeSink{}
	s := NewSchedulerAt(sink, fixedClock(now))

	s.SchedulePreDueReminders(testAssignment("Quiz", due))

	assert.Len(t, sink.alerts, 1)
	assert.Equal(t, time.Date(2026, time.March, 11, 9, 0, 0, 0, time.Local), sink.alerts[0].fireAt)
}

func TestSchedulePreDueRemindersSameDayFireTimeAlreadyPassed(t *testing.T) {
	// Due tomorrow morning: the 1-day offset lands on today 09:00,
	// which has already passed.
	now := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.Local)
	due := time.Date(2026, time.March, 11, 8, 0, 0, 0, time.Local)

	sink := &fakeSink{}
	s := NewSchedulerAt(sink, fixedClock(now))

	s.SchedulePreDueReminders(testAssignment("Lab report", due))

	assert.Empty(t, sink.alerts)
}

func TestSchedulePreDueRemindersPastDueDate(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)
	due := now.AddDate(0, 0, -2)

	sink := &fakeSink{}
	s := NewSchedulerAt(sink, fixedClock(now))

	s.SchedulePreDueReminders(testAssignment("Old homework", due))

	assert.Empty(t, sink.alerts)
}

func TestSchedulePreDueRemindersBodyText(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.Local)
	due := time.Date(2026, time.March, 30, 16, 0, 0, 0, time.Local)

	sink := &fakeSink{}
	s := NewSchedulerAt(sink, fixedClock(now))

	s.SchedulePreDueReminders(testAssignment("Essay", due))

	assert.Len(t, sink.alerts, 4)
	assert.Equal(t, "Due in 14 days (Mar 30, 2026).", sink.alerts[0].body)
	assert.Equal(t, "Due in 1 day (Mar 30, 2026).", sink.alerts[3].body)
}

func TestSchedulePreDueRemindersStacksOnReschedule(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.Local)
	due := time.Date(2026, time.March, 30, 16, 0, 0, 0, time.Local)

	sink := &fakeSink{}
	s := NewSchedulerAt(sink, fixedClock(now))

	a := testAssignment("Essay", due)
	s.SchedulePreDueReminders(a)
	s.SchedulePreDueReminders(a)

	// Nothing is cancelled; the second batch queues alongside the
	// first.
	assert.Len(t, sink.alerts, 8)
}
