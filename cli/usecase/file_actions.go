package usecase

import (
	"context"

	"github.com/ponyo877/sharesh/cli/domain"
)

type FileActions struct {
	repo     Repository
	notifier Notifier
	nav      Navigator
	files    *FileListLoader
	session  *session
}

func (a *FileActions) Download(fileID int64) {
	a.nav.Navigate(domain.DownloadPath(fileID))
}

func (a *FileActions) GoToShare(fileID int64) {
	a.nav.Navigate(domain.SharePagePath(fileID))
}

// Archive refreshes the owned list only when the server accepted the request.
func (a *FileActions) Archive(ctx context.Context, fileID int64) error {
	if err := a.repo.Archive(ctx, fileID); err != nil {
		report(a.notifier, a.session, err, domain.MsgArchiveFailed)
		return err
	}
	a.notifier.Notify(domain.MsgArchived, domain.SeveritySuccess)
	a.files.LoadOwnFiles(ctx)
	return nil
}
