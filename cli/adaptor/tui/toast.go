package tui

import (
	"github.com/ponyo877/sharesh/cli/domain"
	"github.com/rivo/tview"
)

func toastColor(s domain.Severity) string {
	if s == domain.SeverityError {
		return "[red]"
	}
	return "[green]"
}

func (p *Page) ShowToast(t domain.Toast) {
	p.queue(func() {
		p.status.SetText(toastColor(t.Severity) + tview.Escape(t.Message))
	})
}

func (p *Page) FadeToast(t domain.Toast) {
	p.queue(func() {
		p.status.SetText("[gray]" + tview.Escape(t.Message))
	})
}

func (p *Page) RemoveToast(domain.Toast) {
	p.queue(func() {
		p.status.Clear()
	})
}
