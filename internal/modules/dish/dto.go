package dish

type CreateDishRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Image       string   `json:"image" validate:"omitempty,max=2048"`
	Category    string   `json:"category" validate:"required,dish_category"`
	Ingredients []string `json:"ingredients" validate:"required,max=50"`
	Available   *bool    `json:"available"`
}

// UpdateDishRequest is a partial update; absent fields stay as they are.
type UpdateDishRequest struct {
	Name        *string   `json:"name" validate:"omitempty,max=100"`
	Image       *string   `json:"image" validate:"omitempty,max=2048"`
	Category    *string   `json:"category" validate:"omitempty,dish_category"`
	Ingredients *[]string `json:"ingredients"`
	Available   *bool     `json:"available"`
	Selected    *bool     `json:"selected"`
}
