package domain

import "time"

type File struct {
	ID               int64  `json:"id"`
	OriginalFilename string `json:"original_filename"`
	UploadedAt       string `json:"uploaded_at,omitempty"`
	Owner            string `json:"owner,omitempty"`
}

// uploadedAtLayouts lists the timestamp encodings the server is known to emit.
// Flask's jsonify renders datetimes as RFC1123 with a GMT zone.
var uploadedAtLayouts = []string{
	time.RFC1123,
	time.RFC1123Z,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

func (f File) UploadedTime() (time.Time, bool) {
	for _, layout := range uploadedAtLayouts {
		if t, err := time.Parse(layout, f.UploadedAt); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// LocalUploadedAt formats the upload time in the local zone, falling back to the
// raw server value when it cannot be parsed.
func (f File) LocalUploadedAt() string {
	t, ok := f.UploadedTime()
	if !ok {
		return f.UploadedAt
	}
	return t.Local().Format("2006/01/02 15:04:05")
}
