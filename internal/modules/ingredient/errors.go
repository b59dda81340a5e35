package ingredient

import "errors"

var (
	ErrInvalidName        = errors.New("ingredient name must be 1-100 characters")
	ErrIngredientExists   = errors.New("ingredient already exists")
	ErrIngredientNotFound = errors.New("ingredient not found")
)
