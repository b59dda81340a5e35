// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"testing"

	"familykitchen/internal/database"
	"familykitchen/internal/domain"
	"familykitchen/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a migrated in-memory SQLite database with foreign keys on.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:", database.Options{LogLevel: logger.Silent})
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// CreateUser inserts a user with the given username. Guests get no password.
func CreateUser(t *testing.T, db *gorm.DB, username string, guest bool) *domain.User {
	t.Helper()

	u := &domain.User{Username: username, IsGuest: guest}
	if !guest {
		u.PasswordHash = "x"
	}
	require.NoError(t, repository.NewUserRepository(db).Create(context.Background(), u))
	return u
}

// CreateDish inserts an available dish owned by createdBy.
func CreateDish(t *testing.T, db *gorm.DB, name string, createdBy int64) *domain.Dish {
	t.Helper()

	d := &domain.Dish{
		Name:        name,
		Image:       domain.DefaultDishImage,
		Category:    domain.CategoryMeat,
		Ingredients: []string{"Pork", "Salt"},
		Available:   true,
		CreatedBy:   createdBy,
	}
	require.NoError(t, repository.NewDishRepository(db).Create(context.Background(), d))
	return d
}

var faker = gofakeit.New(42)

// FakeDish builds an unsaved dish with a generated name, category and
// ingredient list.
func FakeDish(createdBy int64) *domain.Dish {
	categories := make([]string, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		categories = append(categories, string(c))
	}

	n := faker.Number(1, 5)
	ingredients := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ingredients = append(ingredients, faker.Vegetable())
	}

	return &domain.Dish{
		Name:        faker.Dinner(),
		Image:       domain.DefaultDishImage,
		Category:    domain.DishCategory(faker.RandomString(categories)),
		Ingredients: ingredients,
		Available:   faker.Bool(),
		CreatedBy:   createdBy,
	}
}
