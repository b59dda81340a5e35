package repository

import (
	"context"
	"time"

	"familykitchen/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SelectionRepository struct {
	db *gorm.DB
}

func NewSelectionRepository(db *gorm.DB) *SelectionRepository {
	return &SelectionRepository{db: db}
}

type selectionModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	DishID     int64     `gorm:"column:dish_id;not null;uniqueIndex:idx_selections_dish_user"`
	UserID     int64     `gorm:"column:user_id;not null;index;uniqueIndex:idx_selections_dish_user"`
	MemberName string    `gorm:"column:member_name;size:64;not null"`
	CreatedAt  time.Time `gorm:"column:created_at"`

	Dish *dishModel `gorm:"foreignKey:DishID;references:ID;constraint:OnDelete:CASCADE"`
	User *userModel `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (selectionModel) TableName() string { return "selections" }

func toDomainSelection(m selectionModel) domain.Selection {
	return domain.Selection{
		ID:         m.ID,
		DishID:     m.DishID,
		UserID:     m.UserID,
		MemberName: m.MemberName,
		CreatedAt:  m.CreatedAt,
	}
}

// Toggle removes the (dish, user) selection if present, otherwise inserts it
// with memberName as the display snapshot. An insert that conflicts with a
// concurrent toggle is skipped and still counts as selected.
func (r *SelectionRepository) Toggle(ctx context.Context, dishID, userID int64, memberName string) (bool, error) {
	var selected bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("dish_id = ? AND user_id = ?", dishID, userID).Delete(&selectionModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			selected = false
			return nil
		}

		m := selectionModel{DishID: dishID, UserID: userID, MemberName: memberName}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&m).Error; err != nil {
			return err
		}
		selected = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return selected, nil
}

func (r *SelectionRepository) ListByDish(ctx context.Context, dishID int64) ([]domain.Selection, error) {
	var rows []selectionModel
	if err := r.db.WithContext(ctx).
		Where("dish_id = ?", dishID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Selection, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainSelection(m))
	}
	return out, nil
}
