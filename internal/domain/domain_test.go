package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDishCategoryValid(t *testing.T) {
	for _, c := range []DishCategory{CategoryStaple, CategoryMeat, CategoryVegetable, CategoryDrink} {
		assert.True(t, c.Valid(), c)
	}
	for _, c := range []DishCategory{"", "dessert", "Meat"} {
		assert.False(t, c.Valid(), c)
	}
}

func TestUserMemberName(t *testing.T) {
	u := &User{Username: "guest_1"}
	assert.Equal(t, "guest_1", u.MemberName())

	u.DisplayName = "Grandma"
	assert.Equal(t, "Grandma", u.MemberName())
}

func TestCommentCanModify(t *testing.T) {
	author := &User{ID: 1, IsGuest: true}
	otherGuest := &User{ID: 2, IsGuest: true}
	member := &User{ID: 3}
	c := &Comment{UserID: author.ID}

	assert.True(t, c.CanModify(author))
	assert.True(t, c.CanModify(member))
	assert.False(t, c.CanModify(otherGuest))
	assert.False(t, c.CanModify(nil))
}
