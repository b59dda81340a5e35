package domain

import "time"

// Comment.Likes is counted from CommentLike rows at read time, never stored.
type Comment struct {
	ID         int64     `json:"id"`
	DishID     int64     `json:"dish_id"`
	UserID     int64     `json:"user_id"`
	MemberName string    `json:"member_name"`
	Text       string    `json:"text"`
	Likes      int64     `json:"likes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CanModify reports whether u may edit or delete the comment:
// its author, or any registered member.
func (c *Comment) CanModify(u *User) bool {
	if u == nil {
		return false
	}
	return c.UserID == u.ID || u.IsMember()
}

type CommentLike struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	CommentID int64     `json:"comment_id"`
	CreatedAt time.Time `json:"created_at"`
}
