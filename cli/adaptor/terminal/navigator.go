package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/ponyo877/sharesh/cli/domain"
	"github.com/ponyo877/sharesh/cli/logging"
)

type Downloader interface {
	Download(ctx context.Context, path string) (string, io.ReadCloser, error)
	URL(path string) string
}

type Notifier interface {
	Notify(message string, severity domain.Severity)
}

// Session takes over when a download finds the session expired.
type Session interface {
	Expire()
}

// Navigator performs navigations synchronously. Errors of the last navigation
// are kept for the command's exit status.
type Navigator struct {
	ctx      context.Context
	dl       Downloader
	notifier Notifier
	dir      string
	out      io.Writer

	mu      sync.Mutex
	err     error
	session Session
}

func NewNavigator(ctx context.Context, dl Downloader, notifier Notifier, dir string, out io.Writer) *Navigator {
	return &Navigator{ctx: ctx, dl: dl, notifier: notifier, dir: dir, out: out}
}

// SetSession attaches the session-expired flow used by downloads.
func (n *Navigator) SetSession(s Session) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.session = s
}

// Navigate keeps the error of the last download for Err; hints never reset it.
func (n *Navigator) Navigate(path string) {
	route := domain.ParseRoute(path)
	switch route.Kind {
	case domain.RouteDownload:
		err := n.download(route)
		n.mu.Lock()
		n.err = err
		n.mu.Unlock()
	case domain.RouteShare:
		fmt.Fprintf(n.out, "Share file %d with: sharesh share %d <username>\n", route.FileID, route.FileID)
	case domain.RouteLogin:
		fmt.Fprintf(n.out, "Log in at %s, then store the new session cookie with:\n  sharesh config session_cookie <value>\n", n.dl.URL(domain.PathLogin))
	default:
		fmt.Fprintln(n.out, n.dl.URL(path))
	}
}

func (n *Navigator) Err() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.err
}

func (n *Navigator) download(route domain.Route) error {
	n.mu.Lock()
	s := n.session
	n.mu.Unlock()
	return Download(n.ctx, n.dl, n.notifier, s, n.dir, route)
}

// Download fetches a download route into dir and reports the outcome through
// the notifier. An expired session is handed to s; without one only the
// notification is shown.
func Download(ctx context.Context, dl Downloader, notifier Notifier, s Session, dir string, route domain.Route) error {
	name, body, err := dl.Download(ctx, route.Path)
	if err != nil {
		logging.S().Warnw("download", "file_id", route.FileID, "error", err)
		switch {
		case errors.Is(err, domain.ErrUnauthorized) && s != nil:
			s.Expire()
		case errors.Is(err, domain.ErrUnauthorized):
			notifier.Notify(domain.MsgSessionExpired, domain.SeverityError)
		case domain.IsNetwork(err):
			notifier.Notify(domain.MsgNetworkError, domain.SeverityError)
		default:
			notifier.Notify(domain.ServerMessage(err, "Download failed"), domain.SeverityError)
		}
		return err
	}
	defer body.Close()

	if name == "" {
		name = fmt.Sprintf("file-%d", route.FileID)
	}
	target, err := Save(dir, name, body)
	if err != nil {
		logging.S().Errorw("save download", "name", name, "error", err)
		notifier.Notify(fmt.Sprintf("Cannot save %s", name), domain.SeverityError)
		return err
	}
	notifier.Notify(fmt.Sprintf("Saved %s", target), domain.SeveritySuccess)
	return nil
}

// Save writes body to dir/name and returns the written path.
func Save(dir, name string, body io.Reader) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	target := filepath.Join(dir, filepath.Base(name))
	f, err := os.Create(target)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		return "", err
	}
	return target, f.Close()
}
