package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"familykitchen/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultMaxFileSize = 5 << 20

var allowedMimeTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type Config struct {
	Dir         string
	URLBase     string
	MaxFileSize int64
}

// Service stores dish images on local disk and records their metadata.
type Service struct {
	repo UploadRepository
	cfg  Config
	now  func() time.Time
}

func NewService(repo UploadRepository, cfg Config) *Service {
	if cfg.Dir == "" {
		cfg.Dir = "uploads"
	}
	if cfg.URLBase == "" {
		cfg.URLBase = RoutePrefix
	}
	cfg.URLBase = strings.TrimRight(cfg.URLBase, "/")
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = DefaultMaxFileSize
	}
	return &Service{repo: repo, cfg: cfg, now: time.Now}
}

func (s *Service) MaxFileSize() int64 {
	return s.cfg.MaxFileSize
}

// Upload checks size and sniffed content type, writes the file as
// <unix nanos>_<uuid prefix><ext> and records it.
func (s *Service) Upload(ctx context.Context, userID int64, fh *multipart.FileHeader) (*domain.Upload, error) {
	if fh.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fh.Size > s.cfg.MaxFileSize {
		return nil, ErrFileTooLarge
	}

	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	buf := make([]byte, 512)
	n, err := io.ReadFull(file, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]
	ext, ok := allowedMimeTypes[mimeType]
	if !ok {
		return nil, ErrInvalidMimeType
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind upload: %w", err)
	}

	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	now := s.now()
	id := uuid.NewString()
	filename := fmt.Sprintf("%d_%s%s", now.UnixNano(), id[:8], ext)
	absPath := filepath.Join(s.cfg.Dir, filename)

	dst, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	written, err := io.Copy(dst, io.LimitReader(file, s.cfg.MaxFileSize+1))
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("write file: %w", err)
	}
	if written > s.cfg.MaxFileSize {
		_ = os.Remove(absPath)
		return nil, ErrFileTooLarge
	}

	up := &domain.Upload{
		ID:           id,
		UserID:       userID,
		OriginalName: filepath.Base(fh.Filename),
		FilePath:     filename,
		URL:          s.cfg.URLBase + "/" + filename,
		MimeType:     mimeType,
		Size:         written,
		CreatedAt:    now,
	}
	if err := s.repo.Create(ctx, up); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("save upload record: %w", err)
	}
	return up, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Upload, error) {
	up, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUploadNotFound
		}
		return nil, err
	}
	return up, nil
}
