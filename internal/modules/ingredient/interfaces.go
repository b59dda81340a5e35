package ingredient

import (
	"context"

	"familykitchen/internal/domain"
)

type IngredientRepository interface {
	List(ctx context.Context) ([]domain.Ingredient, error)
	Create(ctx context.Context, name string) (*domain.Ingredient, error)
	Delete(ctx context.Context, id int64) error
}
