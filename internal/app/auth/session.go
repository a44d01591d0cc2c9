package auth

import "sync"

// Session holds the currently signed-in principal for this process.
// The view-models consult it before every remote store call; an empty
// id means nobody is signed in.
type Session struct {
	mu          sync.RWMutex
	principalID string
	email       string
}

// NewSession creates an empty (signed-out) session.
func NewSession() *Session {
	return &Session{}
}

// SignIn records the signed-in principal.
func (s *Session) SignIn(principalID, email string) {
	s.mu.Lock()
	s.principalID = principalID
	s.email = email
	s.mu.Unlock()
}

// SignOut clears the session.
func (s *Session) SignOut() {
	s.mu.Lock()
	s.principalID = ""
	s.email = ""
	s.mu.Unlock()
}

// PrincipalID returns the signed-in principal id, or "" when signed
// out.
func (s *Session) PrincipalID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principalID
}

// Email returns the signed-in principal's email, or "" when signed
// out.
func (s *Session) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}
