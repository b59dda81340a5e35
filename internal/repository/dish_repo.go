package repository

import (
	"context"
	"time"

	"familykitchen/internal/domain"
	"familykitchen/internal/pkg/utils"

	"gorm.io/gorm"
)

type DishRepository struct {
	db *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{db: db}
}

type dishModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name;size:100;not null"`
	Image       string    `gorm:"column:image;not null"`
	Category    string    `gorm:"column:category;size:16;not null;index;check:category IN ('staple','meat','vegetable','drink')"`
	Ingredients string    `gorm:"column:ingredients;type:text;not null"`
	Available   bool      `gorm:"column:available;not null"`
	Selected    bool      `gorm:"column:selected;not null"`
	CreatedBy   int64     `gorm:"column:created_by;not null;index"`
	CreatedAt   time.Time `gorm:"column:created_at;index"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`

	Creator *userModel `gorm:"foreignKey:CreatedBy;references:ID"`
}

func (dishModel) TableName() string { return "dishes" }

func toDomainDish(m dishModel) domain.Dish {
	return domain.Dish{
		ID:          m.ID,
		Name:        m.Name,
		Image:       m.Image,
		Category:    domain.DishCategory(m.Category),
		Ingredients: utils.StringToIngredients(m.Ingredients),
		Available:   m.Available,
		Selected:    m.Selected,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Comments:    []domain.Comment{},
		Selections:  []domain.Selection{},
	}
}

func toDishModel(d *domain.Dish) dishModel {
	return dishModel{
		ID:          d.ID,
		Name:        d.Name,
		Image:       d.Image,
		Category:    string(d.Category),
		Ingredients: utils.IngredientsToString(d.Ingredients),
		Available:   d.Available,
		Selected:    d.Selected,
		CreatedBy:   d.CreatedBy,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// List returns every dish, newest first, with comments and selections attached.
func (r *DishRepository) List(ctx context.Context) ([]domain.Dish, error) {
	var rows []dishModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Dish, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainDish(m))
	}
	if err := r.attach(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *DishRepository) GetByID(ctx context.Context, id int64) (*domain.Dish, error) {
	var m dishModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}

	dishes := []domain.Dish{toDomainDish(m)}
	if err := r.attach(ctx, dishes); err != nil {
		return nil, err
	}
	return &dishes[0], nil
}

func (r *DishRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dishModel{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *DishRepository) Create(ctx context.Context, d *domain.Dish) error {
	m := toDishModel(d)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*d = toDomainDish(m)
	return nil
}

// Update applies only the non-nil fields of ch and always bumps updated_at.
func (r *DishRepository) Update(ctx context.Context, id int64, ch domain.DishChanges) (*domain.Dish, error) {
	updates := map[string]any{
		"updated_at": time.Now().UTC(),
	}
	if ch.Name != nil {
		updates["name"] = *ch.Name
	}
	if ch.Image != nil {
		updates["image"] = *ch.Image
	}
	if ch.Category != nil {
		updates["category"] = string(*ch.Category)
	}
	if ch.Ingredients != nil {
		updates["ingredients"] = utils.IngredientsToString(*ch.Ingredients)
	}
	if ch.Available != nil {
		updates["available"] = *ch.Available
	}
	if ch.Selected != nil {
		updates["selected"] = *ch.Selected
	}

	tx := r.db.WithContext(ctx).
		Model(&dishModel{}).
		Where("id = ?", id).
		Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes the dish together with its comments, their likes and its
// selections.
func (r *DishRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m dishModel
		if err := tx.Select("id").First(&m, id).Error; err != nil {
			return err
		}

		commentIDs := tx.Model(&commentModel{}).Select("id").Where("dish_id = ?", id)
		if err := tx.Where("comment_id IN (?)", commentIDs).Delete(&commentLikeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("dish_id = ?", id).Delete(&commentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("dish_id = ?", id).Delete(&selectionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&dishModel{}, id).Error
	})
}

func (r *DishRepository) attach(ctx context.Context, dishes []domain.Dish) error {
	if len(dishes) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(dishes))
	index := make(map[int64]int, len(dishes))
	for i, d := range dishes {
		ids = append(ids, d.ID)
		index[d.ID] = i
	}

	var comments []commentModel
	if err := withLikeCount(r.db.WithContext(ctx)).
		Where("comments.dish_id IN ?", ids).
		Order("comments.created_at DESC").
		Order("comments.id DESC").
		Find(&comments).Error; err != nil {
		return err
	}
	for _, c := range comments {
		i := index[c.DishID]
		dishes[i].Comments = append(dishes[i].Comments, toDomainComment(c))
	}

	var selections []selectionModel
	if err := r.db.WithContext(ctx).
		Where("dish_id IN ?", ids).
		Order("created_at ASC").
		Order("id ASC").
		Find(&selections).Error; err != nil {
		return err
	}
	for _, s := range selections {
		i := index[s.DishID]
		dishes[i].Selections = append(dishes[i].Selections, toDomainSelection(s))
	}

	return nil
}
