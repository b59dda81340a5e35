package upload

import (
	"context"

	"familykitchen/internal/domain"
)

type UploadRepository interface {
	Create(ctx context.Context, u *domain.Upload) error
	GetByID(ctx context.Context, id string) (*domain.Upload, error)
}
