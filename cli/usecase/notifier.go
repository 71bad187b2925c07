package usecase

import (
	"sync"
	"time"

	"github.com/ponyo877/sharesh/cli/domain"
)

const (
	DefaultToastDuration = 3 * time.Second
	DefaultToastFadeOut  = 300 * time.Millisecond
)

// ToastNotifier keeps at most one toast on its surface: a new toast replaces
// the visible one, and timers of a replaced toast do nothing.
type ToastNotifier struct {
	surface  ToastSurface
	duration time.Duration
	fadeOut  time.Duration

	mu      sync.Mutex
	current domain.Toast
	visible bool
}

func NewToastNotifier(surface ToastSurface, duration, fadeOut time.Duration) *ToastNotifier {
	if duration <= 0 {
		duration = DefaultToastDuration
	}
	if fadeOut <= 0 {
		fadeOut = DefaultToastFadeOut
	}
	return &ToastNotifier{
		surface:  surface,
		duration: duration,
		fadeOut:  fadeOut,
	}
}

func (n *ToastNotifier) Notify(message string, severity domain.Severity) {
	t := domain.NewToast(message, severity)

	n.mu.Lock()
	if n.visible {
		n.surface.RemoveToast(n.current.WithPhase(domain.ToastRemoved))
	}
	n.current = t
	n.visible = true
	n.surface.ShowToast(t.WithPhase(domain.ToastShown))
	n.mu.Unlock()

	time.AfterFunc(n.duration, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if n.visible && n.current.ID == t.ID {
			n.surface.FadeToast(t.WithPhase(domain.ToastFading))
		}
	})
	time.AfterFunc(n.duration+n.fadeOut, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if n.visible && n.current.ID == t.ID {
			n.visible = false
			n.surface.RemoveToast(t.WithPhase(domain.ToastRemoved))
		}
	})
}
