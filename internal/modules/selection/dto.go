package selection

type ToggleResponse struct {
	Selected bool `json:"selected"`
}
