package dish

import "errors"

var (
	ErrDishNotFound     = errors.New("dish not found")
	ErrInvalidName      = errors.New("name must be 1-100 characters")
	ErrInvalidCategory  = errors.New("category must be one of staple, meat, vegetable, drink")
	ErrEmptyIngredients = errors.New("at least one ingredient is required")
)
