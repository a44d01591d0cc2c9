package viewmodels

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ahassan/unisync/internal/app/store"
)

const testPrincipalID = "principal-1"

// staticPrincipal is a fixed PrincipalProvider for tests.
type staticPrincipal string

func (p staticPrincipal) PrincipalID() string { return string(p) }

// countingSink records scheduled alerts without any clock or sweep.
type countingSink struct {
	mu     sync.Mutex
	titles []string
}

func (s *countingSink) ScheduleAt(title, _ string, _ time.Time) {
	s.mu.Lock()
	s.titles = append(s.titles, title)
	s.mu.Unlock()
}

func (s *countingSink) RequestPermission() {}

func (s *countingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.titles)
}

func newTestStore() (*store.MemoryStore, store.Codec) {
	return store.NewMemoryStore(), store.NewCodec("Fall 2025")
}

func nopLogger() zerolog.Logger {
	return zerolog.Nop()
}
