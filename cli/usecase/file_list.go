package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/ponyo877/sharesh/cli/domain"
	"github.com/ponyo877/sharesh/cli/logging"
)

var ownFileActions = []domain.Action{
	domain.ActionDownload,
	domain.ActionShare,
	domain.ActionArchive,
}

type FileListLoader struct {
	repo     Repository
	doc      Document
	notifier Notifier
	session  *session
}

// LoadPage loads both lists concurrently, as a page load does.
func (l *FileListLoader) LoadPage(ctx context.Context) error {
	var (
		wg                sync.WaitGroup
		ownErr, sharedErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		ownErr = l.LoadOwnFiles(ctx)
	}()
	go func() {
		defer wg.Done()
		sharedErr = l.LoadSharedFiles(ctx)
	}()
	wg.Wait()
	return errors.Join(ownErr, sharedErr)
}

func (l *FileListLoader) LoadOwnFiles(ctx context.Context) error {
	l.doc.RenderList(domain.ElementFileList, nil)

	files, err := l.repo.ListOwnFiles(ctx)
	if err != nil {
		logging.S().Warnw("load own files", "error", err)
		if errors.Is(err, domain.ErrUnauthorized) {
			l.session.expire(true)
		} else {
			l.notifier.Notify(domain.MsgLoadFailed, domain.SeverityError)
		}
		return err
	}

	if len(files) == 0 {
		l.doc.RenderList(domain.ElementFileList, []domain.ListEntry{
			domain.NewPlaceholder(domain.PlaceholderNoUploads),
		})
		return nil
	}

	entries := make([]domain.ListEntry, 0, len(files))
	for _, f := range files {
		entries = append(entries, domain.ListEntry{
			Title:   f.OriginalFilename,
			Detail:  f.LocalUploadedAt(),
			FileID:  f.ID,
			Actions: ownFileActions,
		})
	}
	l.doc.RenderList(domain.ElementFileList, entries)
	return nil
}

// LoadSharedFiles reports problems through placeholders only.
func (l *FileListLoader) LoadSharedFiles(ctx context.Context) error {
	l.doc.RenderList(domain.ElementSharedList, nil)

	files, err := l.repo.ListSharedFiles(ctx)
	if err != nil {
		logging.S().Warnw("load shared files", "error", err)
		placeholder := domain.PlaceholderNoShared
		if domain.IsNetwork(err) || errors.Is(err, domain.ErrInvalidResponse) {
			placeholder = domain.PlaceholderSharedError
		}
		l.doc.RenderList(domain.ElementSharedList, []domain.ListEntry{
			domain.NewPlaceholder(placeholder),
		})
		if errors.Is(err, domain.ErrUnauthorized) {
			l.session.expire(false)
		}
		return err
	}

	if len(files) == 0 {
		l.doc.RenderList(domain.ElementSharedList, []domain.ListEntry{
			domain.NewPlaceholder(domain.PlaceholderNoShared),
		})
		return nil
	}

	entries := make([]domain.ListEntry, 0, len(files))
	for _, f := range files {
		entries = append(entries, domain.ListEntry{
			Title:  f.OriginalFilename,
			Detail: "from " + f.Owner,
			FileID: f.ID,
		})
	}
	l.doc.RenderList(domain.ElementSharedList, entries)
	return nil
}
