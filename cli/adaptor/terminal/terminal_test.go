package terminal

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ponyo877/sharesh/cli/domain"
	"github.com/ponyo877/sharesh/cli/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Fields(t *testing.T) {
	doc := NewDocument(io.Discard, map[string]string{domain.ElementShareUsername: "bob"})

	v, ok := doc.Field(domain.ElementShareUsername)
	assert.True(t, ok)
	assert.Equal(t, "bob", v)

	doc.SetField(domain.ElementShareUsername, "")
	doc.SetField(domain.ElementFileSelect, "3")

	v, _ = doc.Field(domain.ElementShareUsername)
	assert.Empty(t, v)
	_, ok = doc.Field(domain.ElementFileSelect)
	assert.False(t, ok, "writes to absent elements are ignored")
}

func TestDocument_RenderList(t *testing.T) {
	var buf bytes.Buffer
	doc := NewDocument(&buf, nil)

	doc.RenderList(domain.ElementSharedList, nil)
	assert.Empty(t, buf.String())

	doc.RenderList(domain.ElementSharedList, []domain.ListEntry{
		{Title: "a.txt", Detail: "from bob", FileID: 1},
		{Title: "longer.txt", Detail: "from carol", FileID: 22},
	})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "     1  a.txt       from bob", lines[0])
	assert.Equal(t, "    22  longer.txt  from carol", lines[1])
}

func TestDocument_RenderPlaceholder(t *testing.T) {
	var buf bytes.Buffer
	doc := NewDocument(&buf, nil)

	doc.RenderList(domain.ElementFileList, []domain.ListEntry{domain.NewPlaceholder(domain.PlaceholderNoUploads)})

	assert.Equal(t, domain.PlaceholderNoUploads+"\n", buf.String())
}

func TestSurface(t *testing.T) {
	var buf bytes.Buffer
	s := NewSurface(&buf)

	s.ShowToast(domain.NewToast("Archived", domain.SeveritySuccess))
	s.FadeToast(domain.NewToast("ignored", domain.SeveritySuccess))
	s.ShowToast(domain.NewToast("Network error", domain.SeverityError))

	assert.Equal(t, "✔ Archived\n✘ Network error\n", buf.String())
}

type fakeDownloader struct {
	name string
	body string
	err  error
}

func (d *fakeDownloader) Download(ctx context.Context, path string) (string, io.ReadCloser, error) {
	if d.err != nil {
		return "", nil, d.err
	}
	return d.name, io.NopCloser(strings.NewReader(d.body)), nil
}

func (d *fakeDownloader) URL(path string) string { return "http://files.test" + path }

type recordingNotifier struct{ messages []string }

func (n *recordingNotifier) Notify(message string, severity domain.Severity) {
	n.messages = append(n.messages, message)
}

func TestNavigator_Download(t *testing.T) {
	dir := t.TempDir()
	notifier := &recordingNotifier{}
	nav := NewNavigator(context.Background(), &fakeDownloader{name: "report.pdf", body: "%PDF"}, notifier, dir, io.Discard)

	nav.Navigate(domain.DownloadPath(5))

	require.NoError(t, nav.Err())
	b, err := os.ReadFile(filepath.Join(dir, "report.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(b))
	assert.Equal(t, []string{"Saved " + filepath.Join(dir, "report.pdf")}, notifier.messages)
}

func TestNavigator_DownloadFallbackName(t *testing.T) {
	dir := t.TempDir()
	nav := NewNavigator(context.Background(), &fakeDownloader{body: "x"}, &recordingNotifier{}, dir, io.Discard)

	nav.Navigate(domain.DownloadPath(9))

	assert.FileExists(t, filepath.Join(dir, "file-9"))
}

func TestNavigator_DownloadDenied(t *testing.T) {
	notifier := &recordingNotifier{}
	dl := &fakeDownloader{err: &domain.StatusError{StatusCode: 403, Message: "Access denied"}}
	nav := NewNavigator(context.Background(), dl, notifier, t.TempDir(), io.Discard)

	nav.Navigate(domain.DownloadPath(9))

	assert.Error(t, nav.Err())
	assert.Equal(t, []string{"Access denied"}, notifier.messages)
}

func TestNavigator_Hints(t *testing.T) {
	var buf bytes.Buffer
	nav := NewNavigator(context.Background(), &fakeDownloader{}, &recordingNotifier{}, t.TempDir(), &buf)

	nav.Navigate(domain.SharePagePath(4))
	nav.Navigate(domain.PathLogin)

	assert.Contains(t, buf.String(), "sharesh share 4 <username>")
	assert.Contains(t, buf.String(), "http://files.test/login")
	assert.NoError(t, nav.Err())
}

func TestNavigator_DownloadUnauthorizedRedirectsToLogin(t *testing.T) {
	var buf bytes.Buffer
	notifier := &recordingNotifier{}
	nav := NewNavigator(context.Background(), &fakeDownloader{err: domain.ErrUnauthorized}, notifier, t.TempDir(), &buf)
	uc := usecase.NewUsecase(nil, NewDocument(io.Discard, nil), notifier, nav, usecase.Config{RedirectDelay: 20 * time.Millisecond})
	nav.SetSession(uc)

	uc.Actions.Download(5)
	assert.ErrorIs(t, nav.Err(), domain.ErrUnauthorized)
	assert.Empty(t, buf.String(), "login hint waits for the redirect delay")

	uc.Wait()

	assert.Equal(t, []string{domain.MsgSessionExpired}, notifier.messages)
	assert.Contains(t, buf.String(), "http://files.test/login")
	assert.ErrorIs(t, nav.Err(), domain.ErrUnauthorized, "the login hint keeps the download error")
}

func TestNavigator_DownloadUnauthorizedWithoutSession(t *testing.T) {
	var buf bytes.Buffer
	notifier := &recordingNotifier{}
	nav := NewNavigator(context.Background(), &fakeDownloader{err: domain.ErrUnauthorized}, notifier, t.TempDir(), &buf)

	nav.Navigate(domain.DownloadPath(5))

	assert.Equal(t, []string{domain.MsgSessionExpired}, notifier.messages)
	assert.Empty(t, buf.String())
}
