package utils

import (
	"encoding/json"
	"strings"
)

// IngredientsToString converts []string to JSON string (safe for DB)
func IngredientsToString(ingredients []string) string {
	if len(ingredients) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(ingredients)
	return string(data)
}

// StringToIngredients converts DB string back to []string
func StringToIngredients(s string) []string {
	if s == "" || s == "[]" {
		return []string{}
	}
	var ingredients []string
	if err := json.Unmarshal([]byte(s), &ingredients); err != nil {
		// Fallback: treat as comma-separated if invalid JSON
		return CleanIngredients(strings.Split(s, ","))
	}
	return ingredients
}

// CleanIngredients trims every entry and drops blanks, keeping order.
func CleanIngredients(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
