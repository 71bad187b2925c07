package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ponyo877/sharesh/cli/domain"
	"github.com/ponyo877/sharesh/cli/logging"
)

type Config struct {
	RedirectDelay time.Duration
}

// Usecase wires the client components around one Document.
type Usecase struct {
	Uploader *Uploader
	Files    *FileListLoader
	Actions  *FileActions
	Share    *ShareForm

	session *session
}

func NewUsecase(repo Repository, doc Document, notifier Notifier, nav Navigator, cfg Config) *Usecase {
	if cfg.RedirectDelay <= 0 {
		cfg.RedirectDelay = DefaultRedirectDelay
	}
	s := &session{notifier: notifier, nav: nav, delay: cfg.RedirectDelay}
	files := &FileListLoader{repo: repo, doc: doc, notifier: notifier, session: s}
	return &Usecase{
		Uploader: newUploader(repo, doc, notifier, files, s),
		Files:    files,
		Actions:  &FileActions{repo: repo, notifier: notifier, nav: nav, files: files, session: s},
		Share:    &ShareForm{repo: repo, doc: doc, notifier: notifier, session: s},
		session:  s,
	}
}

// Dispatch runs the action bound to a per-file control.
func (u *Usecase) Dispatch(ctx context.Context, action domain.Action, fileID int64) error {
	switch action {
	case domain.ActionDownload:
		u.Actions.Download(fileID)
		return nil
	case domain.ActionShare:
		u.Actions.GoToShare(fileID)
		return nil
	case domain.ActionArchive:
		return u.Actions.Archive(ctx, fileID)
	default:
		return fmt.Errorf("unknown action %d", action)
	}
}

// Expire runs the session-expired flow for a request made outside the
// usecases, such as a download navigation.
func (u *Usecase) Expire() {
	u.session.expire(true)
}

// Wait blocks until scheduled navigations, such as the login redirect, have run.
func (u *Usecase) Wait() {
	u.session.pending.Wait()
}

// report notifies the user about a failed request. Transport details never
// reach the notification.
func report(notifier Notifier, s *session, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		s.expire(true)
	case errors.Is(err, domain.ErrPayloadTooLarge):
		notifier.Notify(domain.MsgTooLarge, domain.SeverityError)
	case domain.IsNetwork(err):
		notifier.Notify(domain.MsgNetworkError, domain.SeverityError)
	default:
		notifier.Notify(domain.ServerMessage(err, fallback), domain.SeverityError)
	}
	logging.S().Warnw(fallback, "error", err)
}
