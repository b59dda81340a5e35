package repository

import (
	"context"
	"errors"
	"time"

	"familykitchen/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

type commentModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	DishID     int64     `gorm:"column:dish_id;not null;index"`
	UserID     int64     `gorm:"column:user_id;not null;index"`
	MemberName string    `gorm:"column:member_name;size:64;not null"`
	Text       string    `gorm:"column:text;type:text;not null"`
	Likes      int64     `gorm:"column:likes;->;-:migration"`
	CreatedAt  time.Time `gorm:"column:created_at;index"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`

	Dish *dishModel `gorm:"foreignKey:DishID;references:ID;constraint:OnDelete:CASCADE"`
	User *userModel `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (commentModel) TableName() string { return "comments" }

type commentLikeModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:idx_comment_likes_user_comment"`
	CommentID int64     `gorm:"column:comment_id;not null;index;uniqueIndex:idx_comment_likes_user_comment"`
	CreatedAt time.Time `gorm:"column:created_at"`

	Comment *commentModel `gorm:"foreignKey:CommentID;references:ID;constraint:OnDelete:CASCADE"`
	User    *userModel    `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (commentLikeModel) TableName() string { return "comment_likes" }

// withLikeCount selects comments with likes derived from comment_likes.
func withLikeCount(db *gorm.DB) *gorm.DB {
	return db.Model(&commentModel{}).
		Select("comments.*, (SELECT COUNT(*) FROM comment_likes WHERE comment_likes.comment_id = comments.id) AS likes")
}

func toDomainComment(m commentModel) domain.Comment {
	return domain.Comment{
		ID:         m.ID,
		DishID:     m.DishID,
		UserID:     m.UserID,
		MemberName: m.MemberName,
		Text:       m.Text,
		Likes:      m.Likes,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	m := commentModel{
		DishID:     c.DishID,
		UserID:     c.UserID,
		MemberName: c.MemberName,
		Text:       c.Text,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*c = toDomainComment(m)
	c.Likes = 0
	return nil
}

// GetByID loads a comment that belongs to dishID.
func (r *CommentRepository) GetByID(ctx context.Context, dishID, commentID int64) (*domain.Comment, error) {
	var m commentModel
	err := withLikeCount(r.db.WithContext(ctx)).
		Where("comments.id = ? AND comments.dish_id = ?", commentID, dishID).
		Take(&m).Error
	if err != nil {
		return nil, err
	}
	c := toDomainComment(m)
	return &c, nil
}

func (r *CommentRepository) ListByDish(ctx context.Context, dishID int64) ([]domain.Comment, error) {
	var rows []commentModel
	if err := withLikeCount(r.db.WithContext(ctx)).
		Where("comments.dish_id = ?", dishID).
		Order("comments.created_at DESC").
		Order("comments.id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Comment, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainComment(m))
	}
	return out, nil
}

func (r *CommentRepository) UpdateText(ctx context.Context, dishID, commentID int64, text string) (*domain.Comment, error) {
	tx := r.db.WithContext(ctx).
		Model(&commentModel{}).
		Where("id = ? AND dish_id = ?", commentID, dishID).
		Updates(map[string]any{
			"text":       text,
			"updated_at": time.Now().UTC(),
		})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, dishID, commentID)
}

func (r *CommentRepository) Delete(ctx context.Context, dishID, commentID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", commentID).Delete(&commentLikeModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND dish_id = ?", commentID, dishID).Delete(&commentModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ToggleLike flips the (user, comment) like inside one transaction and
// returns the new state with the recounted total. The insert skips rows a
// concurrent toggle already wrote, so the transaction stays usable for the
// recount.
func (r *CommentRepository) ToggleLike(ctx context.Context, commentID, userID int64) (bool, int64, error) {
	var liked bool
	var likes int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND comment_id = ?", userID, commentID).Delete(&commentLikeModel{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			like := commentLikeModel{UserID: userID, CommentID: commentID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
				return err
			}
			liked = true
		}

		return tx.Model(&commentLikeModel{}).Where("comment_id = ?", commentID).Count(&likes).Error
	})
	if err != nil {
		return false, 0, err
	}
	return liked, likes, nil
}

func (r *CommentRepository) HasLiked(ctx context.Context, commentID, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&commentLikeModel{}).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Count(&count).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	return count > 0, nil
}
