package domain

import "time"

type Selection struct {
	ID         int64     `json:"id"`
	DishID     int64     `json:"dish_id"`
	UserID     int64     `json:"user_id"`
	MemberName string    `json:"member_name"`
	CreatedAt  time.Time `json:"created_at"`
}
