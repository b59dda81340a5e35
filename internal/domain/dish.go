package domain

import "time"

type DishCategory string

const (
	CategoryStaple    DishCategory = "staple"
	CategoryMeat      DishCategory = "meat"
	CategoryVegetable DishCategory = "vegetable"
	CategoryDrink     DishCategory = "drink"
)

// Categories lists every valid category in menu order.
var Categories = []DishCategory{CategoryStaple, CategoryMeat, CategoryVegetable, CategoryDrink}

const DefaultDishImage = "/placeholder.svg?height=200&width=300"

func (c DishCategory) Valid() bool {
	switch c {
	case CategoryStaple, CategoryMeat, CategoryVegetable, CategoryDrink:
		return true
	}
	return false
}

type Dish struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Image       string       `json:"image"`
	Category    DishCategory `json:"category"`
	Ingredients []string     `json:"ingredients"`
	Available   bool         `json:"available"`
	Selected    bool         `json:"selected"`
	CreatedBy   int64        `json:"created_by"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	Comments   []Comment   `json:"comments"`
	Selections []Selection `json:"selections"`
}

// DishChanges is a partial update; nil fields are left untouched.
type DishChanges struct {
	Name        *string
	Image       *string
	Category    *DishCategory
	Ingredients *[]string
	Available   *bool
	Selected    *bool
}
