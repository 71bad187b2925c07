package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/ponyo877/sharesh/cli/domain"
	"github.com/ponyo877/sharesh/cli/logging"
)

type Uploader struct {
	repo     Repository
	doc      Document
	notifier Notifier
	files    *FileListLoader
	session  *session
	open     func(name string) (io.ReadCloser, error)

	inFlight atomic.Bool
}

func newUploader(repo Repository, doc Document, notifier Notifier, files *FileListLoader, s *session) *Uploader {
	return &Uploader{
		repo:     repo,
		doc:      doc,
		notifier: notifier,
		files:    files,
		session:  s,
		open: func(name string) (io.ReadCloser, error) {
			return os.Open(name)
		},
	}
}

// SubmitUpload uploads the file selected in the file input. The upload button
// is disabled while the request is in flight and a second submission in that
// window is dropped.
func (u *Uploader) SubmitUpload(ctx context.Context) error {
	path, _ := u.doc.Field(domain.ElementFileInput)
	path = strings.TrimSpace(path)
	if path == "" {
		u.notifier.Notify(domain.MsgSelectFile, domain.SeverityError)
		return domain.ErrNoSelection
	}
	if !u.inFlight.CompareAndSwap(false, true) {
		return domain.ErrBusy
	}

	res, err := u.send(ctx, path)
	if err != nil {
		return err
	}

	msg := res.Message
	if msg == "" {
		msg = domain.MsgUploaded
	}
	u.notifier.Notify(msg, domain.SeveritySuccess)
	u.doc.SetField(domain.ElementFileInput, "")
	u.files.LoadOwnFiles(ctx)
	return nil
}

func (u *Uploader) send(ctx context.Context, path string) (domain.UploadResult, error) {
	u.doc.SetEnabled(domain.ElementUploadButton, false)
	defer func() {
		u.doc.SetEnabled(domain.ElementUploadButton, true)
		u.inFlight.Store(false)
	}()

	f, err := u.open(path)
	if err != nil {
		logging.S().Warnw("open selected file", "path", path, "error", err)
		u.notifier.Notify(domain.MsgUnreadableFile, domain.SeverityError)
		return domain.UploadResult{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	res, err := u.repo.Upload(ctx, path, f)
	if err != nil {
		report(u.notifier, u.session, err, domain.MsgUploadFailed)
		return domain.UploadResult{}, err
	}
	return res, nil
}
