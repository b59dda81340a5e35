package ingredient

type CreateIngredientRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}
