package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ponyo877/sharesh/cli/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRepository(t *testing.T, handler http.Handler) *Repository {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	r, err := NewRepository(Config{BaseURL: ts.URL, SessionCookie: "s3cr3t"})
	require.NoError(t, err)
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestNewRepository_InvalidURL(t *testing.T) {
	_, err := NewRepository(Config{BaseURL: "localhost"})
	assert.Error(t, err)
}

func TestListOwnFiles(t *testing.T) {
	var gotCookie string
	r := testRepository(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, domain.PathMyFiles, req.URL.Path)
		if c, err := req.Cookie(SessionCookieName); err == nil {
			gotCookie = c.Value
		}
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": 7, "original_filename": "report.pdf", "uploaded_at": "Mon, 02 Jan 2006 15:04:05 GMT"},
		})
	}))

	files, err := r.ListOwnFiles(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, int64(7), files[0].ID)
	assert.Equal(t, "report.pdf", files[0].OriginalFilename)
	assert.Equal(t, "s3cr3t", gotCookie)
}

func TestListSharedFiles(t *testing.T) {
	r := testRepository(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, domain.PathSharedFiles, req.URL.Path)
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": 1, "original_filename": "a.txt", "owner": "bob"},
		})
	}))

	files, err := r.ListSharedFiles(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "bob", files[0].Owner)
}

func TestListSharedFiles_InvalidBody(t *testing.T) {
	r := testRepository(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		io.WriteString(w, "<html>not json</html>")
	}))

	_, err := r.ListSharedFiles(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidResponse)
	assert.False(t, domain.IsNetwork(err))
}

func TestListOwnFiles_Unauthorized(t *testing.T) {
	r := testRepository(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Login required"})
	}))

	_, err := r.ListOwnFiles(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUpload_Multipart(t *testing.T) {
	var gotName, gotContent string
	r := testRepository(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, domain.PathUpload, req.URL.Path)
		f, hdr, err := req.FormFile("file")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		b, _ := io.ReadAll(f)
		gotName, gotContent = hdr.Filename, string(b)
		writeJSON(w, http.StatusOK, map[string]string{"message": "Uploaded"})
	}))

	res, err := r.Upload(context.Background(), "/tmp/notes.txt", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, "Uploaded", res.Message)
	assert.Equal(t, "notes.txt", gotName)
	assert.Equal(t, "hello", gotContent)
}

func TestUpload_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "too large",
			status: http.StatusRequestEntityTooLarge,
			body:   "<html>Request Entity Too Large</html>",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrPayloadTooLarge)
			},
		},
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			body:   `{"error":"Login required"}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrUnauthorized)
			},
		},
		{
			name:   "server message",
			status: http.StatusBadRequest,
			body:   `{"error":"Invalid file"}`,
			check: func(t *testing.T, err error) {
				se, ok := domain.AsStatus(err)
				require.True(t, ok)
				assert.Equal(t, http.StatusBadRequest, se.StatusCode)
				assert.Equal(t, "Invalid file", se.Message)
			},
		},
		{
			name:   "html error page",
			status: http.StatusInternalServerError,
			body:   "<html>oops</html>",
			check: func(t *testing.T, err error) {
				se, ok := domain.AsStatus(err)
				require.True(t, ok)
				assert.Empty(t, se.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testRepository(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				io.Copy(io.Discard, req.Body)
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))

			_, err := r.Upload(context.Background(), "a.bin", strings.NewReader("data"))
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestArchive(t *testing.T) {
	var got archiveRequest
	r := testRepository(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, domain.PathArchive, req.URL.Path)
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
		json.NewDecoder(req.Body).Decode(&got)
		writeJSON(w, http.StatusOK, map[string]string{"message": "File archived"})
	}))

	require.NoError(t, r.Archive(context.Background(), 42))
	assert.Equal(t, int64(42), got.FileID)
}

func TestArchive_NotFound(t *testing.T) {
	r := testRepository(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	}))

	err := r.Archive(context.Background(), 1)
	assert.Equal(t, "not found", domain.ServerMessage(err, "Archive failed"))
}

func TestShare(t *testing.T) {
	var got shareRequest
	r := testRepository(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, domain.PathShare, req.URL.Path)
		json.NewDecoder(req.Body).Decode(&got)
		writeJSON(w, http.StatusOK, map[string]string{"message": "File shared"})
	}))

	require.NoError(t, r.Share(context.Background(), 3, "alice"))
	assert.Equal(t, shareRequest{FileID: 3, Username: "alice"}, got)
}

func TestNetworkError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close()

	r, err := NewRepository(Config{BaseURL: ts.URL})
	require.NoError(t, err)

	err = r.Share(context.Background(), 1, "alice")
	require.Error(t, err)
	assert.True(t, domain.IsNetwork(err))

	var ne *domain.NetworkError
	require.True(t, errors.As(err, &ne))
	assert.Contains(t, ne.Op, domain.PathShare)
}

func TestDownload(t *testing.T) {
	r := testRepository(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/file/download/5", req.URL.Path)
		w.Header().Set("Content-Disposition", `attachment; filename="report.pdf"`)
		io.WriteString(w, "%PDF")
	}))

	name, body, err := r.Download(context.Background(), domain.DownloadPath(5))
	require.NoError(t, err)
	defer body.Close()
	b, _ := io.ReadAll(body)
	assert.Equal(t, "report.pdf", name)
	assert.Equal(t, "%PDF", string(b))
}

func TestDownload_AccessDenied(t *testing.T) {
	r := testRepository(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		io.WriteString(w, "Access denied")
	}))

	_, _, err := r.Download(context.Background(), domain.DownloadPath(5))
	assert.Equal(t, "Access denied", domain.ServerMessage(err, ""))
}

func TestURL(t *testing.T) {
	r, err := NewRepository(Config{BaseURL: "http://example.com/"})
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/share?file=3", r.URL(domain.SharePagePath(3)))
}

func TestAttachmentName(t *testing.T) {
	assert.Equal(t, "a.txt", attachmentName(`attachment; filename=a.txt`))
	assert.Equal(t, "passwd", attachmentName(`attachment; filename="../../etc/passwd"`))
	assert.Empty(t, attachmentName(""))
	assert.Empty(t, attachmentName("attachment"))
}
