// Package repository talks to the file sharing server over HTTP.
package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/ponyo877/sharesh/cli/domain"
	"github.com/ponyo877/sharesh/cli/logging"
	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"
)

// SessionCookieName is the cookie the server keeps its login session in.
const SessionCookieName = "session"

// Config holds repository configuration.
type Config struct {
	BaseURL       string
	SessionCookie string
	// Timeout of zero means requests are bounded only by their context.
	Timeout time.Duration
}

type Repository struct {
	baseURL    *url.URL
	httpClient *http.Client
}

type errorResponse struct {
	Error string `json:"error"`
}

type archiveRequest struct {
	FileID int64 `json:"file_id"`
}

type shareRequest struct {
	FileID   int64  `json:"file_id"`
	Username string `json:"username"`
}

func NewRepository(cfg Config) (*Repository, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server url %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid server url %q: scheme and host are required", cfg.BaseURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}
	if cfg.SessionCookie != "" {
		jar.SetCookies(base, []*http.Cookie{{
			Name:  SessionCookieName,
			Value: cfg.SessionCookie,
			Path:  "/",
		}})
	}

	return &Repository{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Jar:     jar,
		},
	}, nil
}

// URL resolves a server path (optionally carrying a query) against the base URL.
func (r *Repository) URL(path string) string {
	ref, err := url.Parse(path)
	if err != nil {
		return r.baseURL.String() + path
	}
	return r.baseURL.ResolveReference(ref).String()
}

func (r *Repository) do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := r.httpClient.Do(req)
	if err != nil {
		logging.L().Debug("request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Error(err))
		return nil, &domain.NetworkError{Op: req.Method + " " + req.URL.Path, Err: err}
	}
	logging.L().Debug("request",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))
	return resp, nil
}

// checkStatus maps a non-2xx response onto the error taxonomy. The body is
// consumed only when the status is an error.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusRequestEntityTooLarge:
		return domain.ErrPayloadTooLarge
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var errResp errorResponse
	if json.Unmarshal(body, &errResp) == nil {
		return &domain.StatusError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}
	// Plain-text bodies such as "Access denied" are surfaced as they are.
	msg := strings.TrimSpace(string(body))
	if strings.HasPrefix(msg, "<") {
		msg = ""
	}
	return &domain.StatusError{StatusCode: resp.StatusCode, Message: msg}
}

func (r *Repository) postJSON(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.URL(path), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

func (r *Repository) getFiles(ctx context.Context, path string) ([]domain.File, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL(path), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var files []domain.File
	if err := json.NewDecoder(resp.Body).Decode(&files); err != nil {
		return nil, fmt.Errorf("decode %s: %w: %w", path, domain.ErrInvalidResponse, err)
	}
	return files, nil
}

func (r *Repository) ListOwnFiles(ctx context.Context) ([]domain.File, error) {
	return r.getFiles(ctx, domain.PathMyFiles)
}

func (r *Repository) ListSharedFiles(ctx context.Context) ([]domain.File, error) {
	return r.getFiles(ctx, domain.PathSharedFiles)
}

// Upload sends content as the multipart field "file". The body is streamed
// through a pipe so large files are not buffered in memory.
func (r *Repository) Upload(ctx context.Context, filename string, content io.Reader) (domain.UploadResult, error) {
	pr, pw := io.Pipe()
	defer pr.Close()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", filepath.Base(filename))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, content); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.URL(domain.PathUpload), pr)
	if err != nil {
		return domain.UploadResult{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := r.do(req)
	if err != nil {
		return domain.UploadResult{}, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return domain.UploadResult{}, err
	}

	var result domain.UploadResult
	// The message is optional; an unreadable body still counts as success.
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		logging.L().Debug("upload response not decoded", zap.Error(err))
	}
	return result, nil
}

func (r *Repository) Archive(ctx context.Context, fileID int64) error {
	return r.postJSON(ctx, domain.PathArchive, archiveRequest{FileID: fileID})
}

func (r *Repository) Share(ctx context.Context, fileID int64, username string) error {
	return r.postJSON(ctx, domain.PathShare, shareRequest{FileID: fileID, Username: username})
}

// Download is a plain GET of a navigation path. The caller must close the body.
// The returned name comes from Content-Disposition when the server sends one.
func (r *Repository) Download(ctx context.Context, path string) (string, io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL(path), nil)
	if err != nil {
		return "", nil, err
	}

	resp, err := r.do(req)
	if err != nil {
		return "", nil, err
	}
	if err := checkStatus(resp); err != nil {
		resp.Body.Close()
		return "", nil, err
	}

	return attachmentName(resp.Header.Get("Content-Disposition")), resp.Body, nil
}

func attachmentName(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	name := filepath.Base(params["filename"])
	if name == "." || name == "/" {
		return ""
	}
	return name
}
