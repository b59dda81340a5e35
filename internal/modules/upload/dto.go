package upload

import "familykitchen/internal/domain"

// RoutePrefix is where stored files are served.
const RoutePrefix = "/uploads"

type UploadResponse struct {
	ID       string `json:"id"`
	Path     string `json:"path"`
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

func toResponse(u *domain.Upload) UploadResponse {
	return UploadResponse{
		ID:       u.ID,
		Path:     RoutePrefix + "/" + u.FilePath,
		URL:      u.URL,
		MimeType: u.MimeType,
		Size:     u.Size,
	}
}
