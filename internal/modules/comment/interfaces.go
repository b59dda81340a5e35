package comment

import (
	"context"

	"familykitchen/internal/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) error
	GetByID(ctx context.Context, dishID, commentID int64) (*domain.Comment, error)
	UpdateText(ctx context.Context, dishID, commentID int64, text string) (*domain.Comment, error)
	Delete(ctx context.Context, dishID, commentID int64) error
	ToggleLike(ctx context.Context, commentID, userID int64) (bool, int64, error)
}

type DishChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
