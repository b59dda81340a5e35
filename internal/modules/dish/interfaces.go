package dish

import (
	"context"

	"familykitchen/internal/domain"
)

type DishRepository interface {
	List(ctx context.Context) ([]domain.Dish, error)
	GetByID(ctx context.Context, id int64) (*domain.Dish, error)
	Create(ctx context.Context, d *domain.Dish) error
	Update(ctx context.Context, id int64, ch domain.DishChanges) (*domain.Dish, error)
	Delete(ctx context.Context, id int64) error
}
