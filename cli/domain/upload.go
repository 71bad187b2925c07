package domain

type UploadResult struct {
	Message string `json:"message,omitempty"`
}
