package domain

// Element names shared between the usecases and every Document implementation.
const (
	ElementFileInput      = "fileInput"
	ElementUploadButton   = "uploadBtn"
	ElementFileList       = "fileList"
	ElementSharedList     = "sharedList"
	ElementShareUsername  = "shareUsername"
	ElementFileSelect     = "fileSelect"
	ElementSelectedFileID = "selectedFileId"
)

type Action int

const (
	ActionDownload Action = iota
	ActionShare
	ActionArchive
)

func (a Action) String() string {
	switch a {
	case ActionDownload:
		return "download"
	case ActionShare:
		return "share"
	case ActionArchive:
		return "archive"
	default:
		return "unknown"
	}
}

// ListEntry is one rendered row of a file list.
type ListEntry struct {
	Title       string
	Detail      string
	FileID      int64
	Actions     []Action
	Placeholder bool
}

func NewPlaceholder(text string) ListEntry {
	return ListEntry{Title: text, Placeholder: true}
}

type Option struct {
	Value string
	Label string
}
