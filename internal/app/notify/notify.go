// Package notify delivers time-triggered local alerts.
package notify

import "time"

// Sink schedules time-triggered alerts. ScheduleAt silently no-ops
// unless fireAt is strictly in the future. RequestPermission is called
// once at process start, fire-and-forget.
type Sink interface {
	ScheduleAt(title, body string, fireAt time.Time)
	RequestPermission()
}
