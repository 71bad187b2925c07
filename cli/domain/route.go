package domain

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	PathUpload      = "/upload"
	PathMyFiles     = "/api/files/my"
	PathSharedFiles = "/api/files/shared"
	PathArchive     = "/file/archive"
	PathShare       = "/api/share"
	PathSharePage   = "/share"
	PathLogin       = "/login"

	downloadPrefix = "/file/download/"
)

func DownloadPath(fileID int64) string {
	return fmt.Sprintf("%s%d", downloadPrefix, fileID)
}

func SharePagePath(fileID int64) string {
	return fmt.Sprintf("%s?file=%d", PathSharePage, fileID)
}

type RouteKind int

const (
	RouteUnknown RouteKind = iota
	RouteDownload
	RouteShare
	RouteLogin
)

// Route is a navigation target resolved from a path. FileID is zero when the
// target carries no file.
type Route struct {
	Kind   RouteKind
	FileID int64
	Path   string
}

func ParseRoute(path string) Route {
	u, err := url.Parse(path)
	if err != nil {
		return Route{Kind: RouteUnknown, Path: path}
	}
	switch {
	case strings.HasPrefix(u.Path, downloadPrefix):
		id, err := strconv.ParseInt(strings.TrimPrefix(u.Path, downloadPrefix), 10, 64)
		if err != nil {
			return Route{Kind: RouteUnknown, Path: path}
		}
		return Route{Kind: RouteDownload, FileID: id, Path: path}
	case u.Path == PathSharePage:
		id, _ := strconv.ParseInt(u.Query().Get("file"), 10, 64)
		return Route{Kind: RouteShare, FileID: id, Path: path}
	case u.Path == PathLogin:
		return Route{Kind: RouteLogin, Path: path}
	default:
		return Route{Kind: RouteUnknown, Path: path}
	}
}
