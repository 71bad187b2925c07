package usecase

import (
	"context"
	"io"

	"github.com/ponyo877/sharesh/cli/domain"
)

type Repository interface {
	ListOwnFiles(ctx context.Context) ([]domain.File, error)
	ListSharedFiles(ctx context.Context) ([]domain.File, error)
	Upload(ctx context.Context, filename string, content io.Reader) (domain.UploadResult, error)
	Archive(ctx context.Context, fileID int64) error
	Share(ctx context.Context, fileID int64, username string) error
}

// Document is the element surface the usecases read from and render into.
// Elements are addressed by the domain.Element* names; a missing element
// reports ok=false from Field and ignores writes.
type Document interface {
	Field(name string) (value string, ok bool)
	SetField(name, value string)
	SetEnabled(name string, enabled bool)
	RenderList(name string, entries []domain.ListEntry)
	SetOptions(name string, options []domain.Option)
}

type Notifier interface {
	Notify(message string, severity domain.Severity)
}

type ToastSurface interface {
	ShowToast(t domain.Toast)
	FadeToast(t domain.Toast)
	RemoveToast(t domain.Toast)
}

type Navigator interface {
	Navigate(path string)
}
