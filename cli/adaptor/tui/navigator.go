package tui

import (
	"context"
	"sync"

	"github.com/ponyo877/sharesh/cli/adaptor/terminal"
	"github.com/ponyo877/sharesh/cli/domain"
	"github.com/ponyo877/sharesh/cli/logging"
)

type Navigator struct {
	ctx      context.Context
	page     *Page
	dl       terminal.Downloader
	notifier terminal.Notifier
	dir      string

	mu      sync.Mutex
	session terminal.Session
}

func NewNavigator(ctx context.Context, page *Page, dl terminal.Downloader, notifier terminal.Notifier, dir string) *Navigator {
	return &Navigator{ctx: ctx, page: page, dl: dl, notifier: notifier, dir: dir}
}

// SetSession attaches the session-expired flow used by downloads.
func (n *Navigator) SetSession(s terminal.Session) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.session = s
}

func (n *Navigator) Navigate(path string) {
	route := domain.ParseRoute(path)
	switch route.Kind {
	case domain.RouteDownload:
		n.mu.Lock()
		s := n.session
		n.mu.Unlock()
		go terminal.Download(n.ctx, n.dl, n.notifier, s, n.dir, route)
	case domain.RouteShare:
		n.page.queue(func() { n.page.ShowShare(route.FileID) })
	case domain.RouteLogin:
		loginURL := n.dl.URL(domain.PathLogin)
		n.page.queue(func() { n.page.ShowLogin(loginURL) })
	default:
		logging.S().Warnw("unknown navigation", "path", path)
	}
}
