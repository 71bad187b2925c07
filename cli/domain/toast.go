package domain

import "github.com/oklog/ulid/v2"

type ToastPhase int

const (
	ToastCreated ToastPhase = iota
	ToastShown
	ToastFading
	ToastRemoved
)

type Toast struct {
	ID       ulid.ULID
	Message  string
	Severity Severity
	Phase    ToastPhase
}

func NewToast(message string, severity Severity) Toast {
	return Toast{
		ID:       ulid.Make(),
		Message:  message,
		Severity: severity,
		Phase:    ToastCreated,
	}
}

func (t Toast) WithPhase(phase ToastPhase) Toast {
	t.Phase = phase
	return t
}
