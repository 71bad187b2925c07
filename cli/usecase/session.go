package usecase

import (
	"sync"
	"time"

	"github.com/ponyo877/sharesh/cli/domain"
)

const DefaultRedirectDelay = 1200 * time.Millisecond

type session struct {
	notifier Notifier
	nav      Navigator
	delay    time.Duration
	pending  sync.WaitGroup

	mu          sync.Mutex
	notified    bool
	redirecting bool
}

// expire reports the lost session and sends the user to the login view once
// the redirect delay has passed. Calls made while a redirect is scheduled
// share it and its notification.
func (s *session) expire(notify bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if notify && !s.notified {
		s.notified = true
		s.notifier.Notify(domain.MsgSessionExpired, domain.SeverityError)
	}
	if s.redirecting {
		return
	}
	s.redirecting = true
	s.pending.Add(1)
	time.AfterFunc(s.delay, func() {
		defer s.pending.Done()
		s.nav.Navigate(domain.PathLogin)

		s.mu.Lock()
		s.notified = false
		s.redirecting = false
		s.mu.Unlock()
	})
}
