package application

import "time"

// CompleteSessionAt marks a session as submitted at the given time, letting
// tests exercise eviction without waiting out the retention window.
func (s *SessionService) CompleteSessionAt(token string, at time.Time) {
	s.mu.RLock()
	sess := s.sessions[token]
	s.mu.RUnlock()
	if sess == nil {
		return
	}
	sess.mu.Lock()
	sess.Completed = true
	sess.completedAt = at
	sess.mu.Unlock()
}
