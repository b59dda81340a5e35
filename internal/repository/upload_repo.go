package repository

import (
	"context"
	"time"

	"familykitchen/internal/domain"

	"gorm.io/gorm"
)

type UploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) *UploadRepository {
	return &UploadRepository{db: db}
}

type uploadModel struct {
	ID           string    `gorm:"column:id;primaryKey;size:36"`
	UserID       int64     `gorm:"column:user_id;not null;index"`
	OriginalName string    `gorm:"column:original_name;size:255;not null"`
	FilePath     string    `gorm:"column:file_path;not null"`
	URL          string    `gorm:"column:url;not null"`
	MimeType     string    `gorm:"column:mime_type;size:64;not null"`
	Size         int64     `gorm:"column:size;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`

	User *userModel `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (uploadModel) TableName() string { return "uploads" }

func toDomainUpload(m uploadModel) *domain.Upload {
	return &domain.Upload{
		ID:           m.ID,
		UserID:       m.UserID,
		OriginalName: m.OriginalName,
		FilePath:     m.FilePath,
		URL:          m.URL,
		MimeType:     m.MimeType,
		Size:         m.Size,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *UploadRepository) Create(ctx context.Context, u *domain.Upload) error {
	m := uploadModel{
		ID:           u.ID,
		UserID:       u.UserID,
		OriginalName: u.OriginalName,
		FilePath:     u.FilePath,
		URL:          u.URL,
		MimeType:     u.MimeType,
		Size:         u.Size,
		CreatedAt:    u.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*u = *toDomainUpload(m)
	return nil
}

func (r *UploadRepository) GetByID(ctx context.Context, id string) (*domain.Upload, error) {
	var m uploadModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainUpload(m), nil
}
