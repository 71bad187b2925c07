package usecase

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/ponyo877/sharesh/cli/domain"
)

type fakeRepository struct {
	mu sync.Mutex

	ownFiles    []domain.File
	ownErr      error
	sharedFiles []domain.File
	sharedErr   error
	uploadRes   domain.UploadResult
	uploadErr   error
	archiveErr  error
	shareErr    error

	uploads  []string
	archived []int64
	shared   []string
	ownCalls int
	onUpload func()
}

func (r *fakeRepository) ListOwnFiles(ctx context.Context) ([]domain.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ownCalls++
	return r.ownFiles, r.ownErr
}

func (r *fakeRepository) ListSharedFiles(ctx context.Context) ([]domain.File, error) {
	return r.sharedFiles, r.sharedErr
}

func (r *fakeRepository) Upload(ctx context.Context, filename string, content io.Reader) (domain.UploadResult, error) {
	b, _ := io.ReadAll(content)
	r.mu.Lock()
	r.uploads = append(r.uploads, filename+":"+string(b))
	hook := r.onUpload
	r.mu.Unlock()
	if hook != nil {
		hook()
	}
	return r.uploadRes, r.uploadErr
}

func (r *fakeRepository) Archive(ctx context.Context, fileID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.archived = append(r.archived, fileID)
	return r.archiveErr
}

func (r *fakeRepository) Share(ctx context.Context, fileID int64, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shared = append(r.shared, username)
	return r.shareErr
}

func (r *fakeRepository) ownListCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ownCalls
}

type fakeDocument struct {
	mu       sync.Mutex
	fields   map[string]string
	disabled map[string]bool
	enables  []bool
	lists    map[string][]domain.ListEntry
	options  map[string][]domain.Option
}

func newFakeDocument() *fakeDocument {
	return &fakeDocument{
		fields:   map[string]string{},
		disabled: map[string]bool{},
		lists:    map[string][]domain.ListEntry{},
		options:  map[string][]domain.Option{},
	}
}

func (d *fakeDocument) Field(name string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.fields[name]
	return v, ok
}

func (d *fakeDocument) SetField(name, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fields[name] = value
}

func (d *fakeDocument) SetEnabled(name string, enabled bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.disabled[name] = !enabled
	d.enables = append(d.enables, enabled)
}

func (d *fakeDocument) RenderList(name string, entries []domain.ListEntry) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lists[name] = entries
}

func (d *fakeDocument) SetOptions(name string, options []domain.Option) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.options[name] = options
}

func (d *fakeDocument) list(name string) []domain.ListEntry {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lists[name]
}

type notification struct {
	Message  string
	Severity domain.Severity
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []notification
}

func (n *fakeNotifier) Notify(message string, severity domain.Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification{message, severity})
}

func (n *fakeNotifier) messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.sent))
	for _, s := range n.sent {
		out = append(out, s.Message)
	}
	return out
}

func (n *fakeNotifier) last() notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.sent) == 0 {
		return notification{}
	}
	return n.sent[len(n.sent)-1]
}

type fakeNavigator struct {
	mu    sync.Mutex
	paths []string
}

func (n *fakeNavigator) Navigate(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, path)
}

func (n *fakeNavigator) visited() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.paths...)
}

type fixture struct {
	repo     *fakeRepository
	doc      *fakeDocument
	notifier *fakeNotifier
	nav      *fakeNavigator
	uc       *Usecase
}

func newFixture() *fixture {
	f := &fixture{
		repo:     &fakeRepository{},
		doc:      newFakeDocument(),
		notifier: &fakeNotifier{},
		nav:      &fakeNavigator{},
	}
	f.uc = NewUsecase(f.repo, f.doc, f.notifier, f.nav, Config{RedirectDelay: 20 * time.Millisecond})
	return f
}
