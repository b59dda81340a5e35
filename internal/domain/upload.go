package domain

import "time"

// Upload represents a physical file stored on the local filesystem.
type Upload struct {
	ID           string    `json:"id"`
	UserID       int64     `json:"user_id"`
	OriginalName string    `json:"original_name"`
	FilePath     string    `json:"-"`
	URL          string    `json:"url"`
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"created_at"`
}
