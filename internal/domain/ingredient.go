package domain

import "time"

// Ingredient is an entry of the shared suggestion list shown when adding dishes.
type Ingredient struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
