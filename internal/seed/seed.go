// Package seed fills an empty database with the family members and the
// default menu.
package seed

import (
	"context"
	"fmt"
	"log"

	"familykitchen/internal/domain"
	"familykitchen/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is shared by every seeded member.
const DefaultPassword = "password"

type Options struct {
	// PasswordCost is the bcrypt cost; zero means bcrypt.DefaultCost.
	PasswordCost int
}

type member struct {
	username    string
	displayName string
}

var members = []member{
	{"admin", "Admin"},
	{"you", "You"},
	{"girlfriend", "Girlfriend"},
}

type dishSeed struct {
	name        string
	category    domain.DishCategory
	ingredients []string
	available   bool
}

var dishes = []dishSeed{
	{"Yangzhou Fried Rice", domain.CategoryStaple, []string{"Rice", "Eggs", "Shrimp", "Ham", "Green peas", "Scallions", "Soy sauce"}, true},
	{"Steamed White Rice", domain.CategoryStaple, []string{"Jasmine rice", "Water"}, true},
	{"Hand-pulled Noodles", domain.CategoryStaple, []string{"Wheat flour", "Water", "Salt", "Alkaline water"}, false},
	{"Sweet and Sour Pork", domain.CategoryMeat, []string{"Pork tenderloin", "Pineapple", "Bell peppers", "Onion", "Vinegar", "Sugar", "Ketchup"}, true},
	{"Kung Pao Chicken", domain.CategoryMeat, []string{"Chicken breast", "Peanuts", "Dried chilies", "Sichuan peppercorns", "Scallions", "Garlic"}, true},
	{"Braised Pork Belly", domain.CategoryMeat, []string{"Pork belly", "Soy sauce", "Rock sugar", "Shaoxing wine", "Star anise", "Ginger"}, true},
	{"Mapo Tofu", domain.CategoryVegetable, []string{"Silken tofu", "Ground pork", "Doubanjiang", "Sichuan peppercorns", "Scallions", "Garlic"}, true},
	{"Stir-fried Bok Choy", domain.CategoryVegetable, []string{"Baby bok choy", "Garlic", "Ginger", "Oyster sauce", "Sesame oil"}, true},
	{"Dry-fried Green Beans", domain.CategoryVegetable, []string{"Green beans", "Preserved vegetables", "Ground pork", "Dried chilies", "Garlic"}, true},
	{"Jasmine Tea", domain.CategoryDrink, []string{"Jasmine tea leaves", "Hot water"}, true},
	{"Soy Milk", domain.CategoryDrink, []string{"Soybeans", "Water", "Sugar (optional)"}, true},
}

type commentSeed struct {
	dish   int // 1-based position in dishes
	author int // index into members
	text   string
	likes  int
}

var comments = []commentSeed{
	{1, 2, "Love the shrimp in this! Can we add more next time?", 1},
	{3, 1, "Takes too long to make on weekdays", 0},
	{4, 2, "My absolute favorite! Perfect balance of sweet and sour", 2},
	{5, 1, "Love the numbing spice from Sichuan peppercorns!", 1},
	{7, 2, "So comforting and flavorful!", 1},
	{9, 1, "Great texture when done right - crispy outside, tender inside", 1},
	{11, 2, "Perfect with breakfast!", 1},
}

var ingredients = []string{
	"Rice", "Eggs", "Garlic", "Ginger", "Scallions", "Soy sauce", "Sichuan peppercorns", "Pork belly", "Tofu",
}

// Run seeds members when the users table is empty and the default menu when
// the dishes table is empty. Calling it on a populated database is a no-op.
func Run(ctx context.Context, db *gorm.DB, opts Options) error {
	users := repository.NewUserRepository(db)
	dishRepo := repository.NewDishRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)

	var userCount int64
	if err := db.WithContext(ctx).Table("users").Count(&userCount).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}

	seeded := make([]*domain.User, 0, len(members))
	if userCount == 0 {
		cost := opts.PasswordCost
		if cost == 0 {
			cost = bcrypt.DefaultCost
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), cost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		for _, m := range members {
			u := &domain.User{
				Username:     m.username,
				PasswordHash: string(hash),
				DisplayName:  m.displayName,
			}
			if err := users.Create(ctx, u); err != nil {
				return fmt.Errorf("create user %s: %w", m.username, err)
			}
			seeded = append(seeded, u)
		}
		log.Printf("seed: created %d members (password %q)", len(seeded), DefaultPassword)
	} else {
		for _, m := range members {
			u, err := users.GetByUsername(ctx, m.username)
			if err != nil {
				log.Printf("seed: member %s not found, skipping menu", m.username)
				return nil
			}
			seeded = append(seeded, u)
		}
	}

	var dishCount int64
	if err := db.WithContext(ctx).Table("dishes").Count(&dishCount).Error; err != nil {
		return fmt.Errorf("count dishes: %w", err)
	}
	if dishCount > 0 {
		return nil
	}

	created := make([]*domain.Dish, 0, len(dishes))
	for _, s := range dishes {
		d := &domain.Dish{
			Name:        s.name,
			Image:       domain.DefaultDishImage,
			Category:    s.category,
			Ingredients: s.ingredients,
			Available:   s.available,
			CreatedBy:   seeded[0].ID,
		}
		if err := dishRepo.Create(ctx, d); err != nil {
			return fmt.Errorf("create dish %s: %w", s.name, err)
		}
		created = append(created, d)
	}

	for _, s := range comments {
		author := seeded[s.author]
		c := &domain.Comment{
			DishID:     created[s.dish-1].ID,
			UserID:     author.ID,
			MemberName: author.MemberName(),
			Text:       s.text,
		}
		if err := commentRepo.Create(ctx, c); err != nil {
			return fmt.Errorf("create comment: %w", err)
		}
		for i := 0; i < s.likes && i < len(seeded); i++ {
			if _, _, err := commentRepo.ToggleLike(ctx, c.ID, seeded[i].ID); err != nil {
				return fmt.Errorf("like comment: %w", err)
			}
		}
	}

	for _, name := range ingredients {
		if _, err := ingredientRepo.Create(ctx, name); err != nil {
			log.Printf("seed: ingredient %s: %v", name, err)
		}
	}

	log.Printf("seed: created %d dishes and %d comments", len(created), len(comments))
	return nil
}
