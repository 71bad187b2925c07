package domain

const (
	MsgSelectFile       = "Please select a file"
	MsgUnreadableFile   = "Cannot read selected file"
	MsgUsernameRequired = "Username required"
	MsgUploaded         = "File uploaded successfully"
	MsgUploadFailed     = "Upload failed"
	MsgSessionExpired   = "Session expired. Please log in again."
	MsgTooLarge         = "File too large (max 10MB)"
	MsgNetworkError     = "Network error"
	MsgLoadFailed       = "Failed to load files"
	MsgArchived         = "Archived"
	MsgArchiveFailed    = "Archive failed"
	MsgShared           = "File shared successfully!"
	MsgShareFailed      = "Share failed"

	PlaceholderNoUploads   = "No uploads yet"
	PlaceholderNoShared    = "No shared files"
	PlaceholderSharedError = "Error loading shared files"
)
