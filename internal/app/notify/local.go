package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Alert is a scheduled local notification waiting to fire.
type Alert struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Body   string    `json:"body"`
	FireAt time.Time `json:"fireAt"`
}

// LocalSink holds pending alerts in memory and fires the due ones from
// a cron-driven sweep. Fired alerts are delivered to the log and
// dropped; there is no cancellation by originator, so re-scheduling
// the same assignment leaves the earlier alerts pending.
type LocalSink struct {
	mu      sync.Mutex
	pending []Alert

	logger zerolog.Logger
	now    func() time.Time
	cron   *cron.Cron
}

// NewLocalSink creates a LocalSink sweeping on the given cron
// schedule (e.g. "* * * * *").
func NewLocalSink(sweepSchedule string, logger zerolog.Logger) (*LocalSink, error) {
	s := &LocalSink{
		logger: logger,
		now:    time.Now,
	}

	c := cron.New()
	if _, err := c.AddFunc(sweepSchedule, s.sweep); err != nil {
		return nil, err
	}
	s.cron = c
	return s, nil
}

// newLocalSinkAt is the test constructor with an injected clock and no
// cron loop; sweeps are driven manually.
func newLocalSinkAt(logger zerolog.Logger, now func() time.Time) *LocalSink {
	return &LocalSink{logger: logger, now: now}
}

// ScheduleAt queues an alert. Fire times at or before now are refused
// silently.
func (s *LocalSink) ScheduleAt(title, body string, fireAt time.Time) {
	if !fireAt.After(s.now()) {
		return
	}

	s.mu.Lock()
	s.pending = append(s.pending, Alert{
		ID:     uuid.NewString(),
		Title:  title,
		Body:   body,
		FireAt: fireAt,
	})
	s.mu.Unlock()

	s.logger.Debug().Str("title", title).Time("fireAt", fireAt).Msg("Alert scheduled")
}

// RequestPermission logs the request. A desktop build would ask the
// OS notification service here.
func (s *LocalSink) RequestPermission() {
	s.logger.Info().Msg("Notification permission requested")
}

// Start begins the background sweep loop.
func (s *LocalSink) Start() {
	if s.cron != nil {
		s.cron.Start()
	}
}

// Stop halts the sweep loop; pending alerts are kept.
func (s *LocalSink) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Pending returns a snapshot of the alerts still waiting to fire.
func (s *LocalSink) Pending() []Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Alert, len(s.pending))
	copy(out, s.pending)
	return out
}

// sweep fires every alert whose time has come and keeps the rest.
func (s *LocalSink) sweep() {
	now := s.now()

	s.mu.Lock()
	var due, kept []Alert
	for _, a := range s.pending {
		if !a.FireAt.After(now) {
			due = append(due, a)
		} else {
			kept = append(kept, a)
		}
	}
	s.pending = kept
	s.mu.Unlock()

	for _, a := range due {
		s.logger.Info().
			Str("alertID", a.ID).
			Str("title", a.Title).
			Str("body", a.Body).
			Time("fireAt", a.FireAt).
			Msg("Notification fired")
	}
}
