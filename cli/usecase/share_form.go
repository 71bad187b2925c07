package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/ponyo877/sharesh/cli/domain"
	"github.com/ponyo877/sharesh/cli/logging"
)

type ShareForm struct {
	repo     Repository
	doc      Document
	notifier Notifier
	session  *session
}

// fileID prefers the hidden field set by a per-file share action and falls
// back to the dropdown of the general share view.
func (f *ShareForm) fileID() (int64, bool) {
	raw, ok := f.doc.Field(domain.ElementSelectedFileID)
	if !ok || strings.TrimSpace(raw) == "" {
		raw, _ = f.doc.Field(domain.ElementFileSelect)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (f *ShareForm) SubmitShare(ctx context.Context) error {
	fileID, ok := f.fileID()
	if !ok {
		f.notifier.Notify(domain.MsgSelectFile, domain.SeverityError)
		return domain.ErrNoSelection
	}

	username, _ := f.doc.Field(domain.ElementShareUsername)
	username = strings.TrimSpace(username)
	if username == "" {
		f.notifier.Notify(domain.MsgUsernameRequired, domain.SeverityError)
		return domain.ErrUsernameRequired
	}

	if err := f.repo.Share(ctx, fileID, username); err != nil {
		report(f.notifier, f.session, err, domain.MsgShareFailed)
		return err
	}

	f.notifier.Notify(domain.MsgShared, domain.SeveritySuccess)
	f.doc.SetField(domain.ElementShareUsername, "")
	if _, ok := f.doc.Field(domain.ElementFileSelect); ok {
		f.doc.SetField(domain.ElementFileSelect, "")
	}
	return nil
}

// LoadChoices fills the file dropdown of the general share view with the
// user's own files.
func (f *ShareForm) LoadChoices(ctx context.Context) error {
	files, err := f.repo.ListOwnFiles(ctx)
	if err != nil {
		logging.S().Warnw("load share choices", "error", err)
		return err
	}
	options := make([]domain.Option, 0, len(files))
	for _, file := range files {
		options = append(options, domain.Option{
			Value: strconv.FormatInt(file.ID, 10),
			Label: file.OriginalFilename,
		})
	}
	f.doc.SetOptions(domain.ElementFileSelect, options)
	return nil
}
