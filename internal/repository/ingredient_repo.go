package repository

import (
	"context"
	"strings"
	"time"

	"familykitchen/internal/domain"

	"gorm.io/gorm"
)

type IngredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

type ingredientModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;size:100;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
}

func (ingredientModel) TableName() string { return "ingredients" }

func toDomainIngredient(m ingredientModel) domain.Ingredient {
	return domain.Ingredient{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

func (r *IngredientRepository) List(ctx context.Context) ([]domain.Ingredient, error) {
	var rows []ingredientModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Ingredient, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainIngredient(m))
	}
	return out, nil
}

// Create inserts a trimmed name. Duplicates surface as the driver's unique
// violation; callers check it with database.IsUniqueViolation.
func (r *IngredientRepository) Create(ctx context.Context, name string) (*domain.Ingredient, error) {
	m := ingredientModel{Name: strings.TrimSpace(name)}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	out := toDomainIngredient(m)
	return &out, nil
}

func (r *IngredientRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&ingredientModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
