package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIngredientsRoundTrip(t *testing.T) {
	cases := [][]string{
		{"Rice"},
		{"Rice", "Eggs", "Shrimp", "Ham"},
		{"Soy sauce, light", "Scallions"},
		{"辣椒", "花椒"},
		{`quote "inside"`, "back\\slash"},
	}

	for _, in := range cases {
		encoded := IngredientsToString(in)
		decoded := StringToIngredients(encoded)
		assert.Equal(t, in, decoded)
		assert.Equal(t, encoded, IngredientsToString(decoded))
	}
}

func TestIngredientsEmpty(t *testing.T) {
	assert.Equal(t, "[]", IngredientsToString(nil))
	assert.Equal(t, "[]", IngredientsToString([]string{}))
	assert.Equal(t, []string{}, StringToIngredients(""))
	assert.Equal(t, []string{}, StringToIngredients("[]"))
}

func TestStringToIngredientsLegacyCommaList(t *testing.T) {
	assert.Equal(t, []string{"Rice", "Water"}, StringToIngredients("Rice, Water,"))
}

func TestCleanIngredients(t *testing.T) {
	assert.Equal(t, []string{"Rice", "Eggs"}, CleanIngredients([]string{"  Rice ", "", "   ", "Eggs"}))
	assert.Empty(t, CleanIngredients([]string{" ", ""}))
}
