// Package reminder derives advance notifications from assignment due
// dates.
package reminder

import (
	"fmt"
	"time"

	"github.com/ahassan/unisync/internal/app/models"
	"github.com/ahassan/unisync/internal/app/notify"
)

// Reminders fire at 09:00 local time on the day 14, 7, 3 and 1 days
// before the due date.
const fireHour = 9

var preDueOffsets = []int{14, 7, 3, 1}

// Scheduler turns an assignment's due date into absolute fire times
// and hands them to the sink. It keeps no record of what it scheduled:
// re-invoking it for the same assignment queues a fresh batch without
// cancelling earlier requests.
type Scheduler struct {
	sink notify.Sink
	now  func() time.Time
}

// NewScheduler creates a Scheduler on the wall clock.
func NewScheduler(sink notify.Sink) *Scheduler {
	return NewSchedulerAt(sink, time.Now)
}

// NewSchedulerAt creates a Scheduler with an injected clock.
func NewSchedulerAt(sink notify.Sink, now func() time.Time) *Scheduler {
	return &Scheduler{sink: sink, now: now}
}

// SchedulePreDueReminders schedules one alert per offset whose
// normalized fire time is still strictly in the future. A due date
// entirely in the past produces nothing.
func (s *Scheduler) SchedulePreDueReminders(a models.Assignment) {
	now := s.now()

	for _, days := range preDueOffsets {
		fireAt := atFireHour(a.DueDate.AddDate(0, 0, -days))
		if !fireAt.After(now) {
			continue
		}

		s.sink.ScheduleAt(
			"Upcoming: "+a.Title,
			fmt.Sprintf("Due in %s (%s).", pluralDays(days), a.DueDate.Format("Jan 2, 2006")),
			fireAt,
		)
	}
}

// atFireHour normalizes t to 09:00 local time on its calendar day.
func atFireHour(t time.Time) time.Time {
	local := t.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), fireHour, 0, 0, 0, time.Local)
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
