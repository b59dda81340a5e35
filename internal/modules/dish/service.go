package dish

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"familykitchen/internal/domain"
	"familykitchen/internal/pkg/utils"

	"gorm.io/gorm"
)

const maxNameLen = 100

type Service struct {
	dishes DishRepository
}

func NewService(dishes DishRepository) *Service {
	return &Service{dishes: dishes}
}

func (s *Service) List(ctx context.Context) ([]domain.Dish, error) {
	return s.dishes.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Dish, error) {
	d, err := s.dishes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}
	return d, nil
}

// Create adds a dish owned by createdBy. Ingredient entries are trimmed and
// blanks dropped before the non-empty check.
func (s *Service) Create(ctx context.Context, createdBy int64, req CreateDishRequest) (*domain.Dish, error) {
	name, err := cleanName(req.Name)
	if err != nil {
		return nil, err
	}

	category := domain.DishCategory(strings.TrimSpace(req.Category))
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	ingredients := utils.CleanIngredients(req.Ingredients)
	if len(ingredients) == 0 {
		return nil, ErrEmptyIngredients
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	d := &domain.Dish{
		Name:        name,
		Image:       imageOrDefault(req.Image),
		Category:    category,
		Ingredients: ingredients,
		Available:   available,
		CreatedBy:   createdBy,
	}
	if err := s.dishes.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("create dish: %w", err)
	}
	return d, nil
}

// Update applies the provided fields with the same rules as Create.
func (s *Service) Update(ctx context.Context, id int64, req UpdateDishRequest) (*domain.Dish, error) {
	var ch domain.DishChanges

	if req.Name != nil {
		name, err := cleanName(*req.Name)
		if err != nil {
			return nil, err
		}
		ch.Name = &name
	}
	if req.Category != nil {
		category := domain.DishCategory(strings.TrimSpace(*req.Category))
		if !category.Valid() {
			return nil, ErrInvalidCategory
		}
		ch.Category = &category
	}
	if req.Ingredients != nil {
		ingredients := utils.CleanIngredients(*req.Ingredients)
		if len(ingredients) == 0 {
			return nil, ErrEmptyIngredients
		}
		ch.Ingredients = &ingredients
	}
	if req.Image != nil {
		image := imageOrDefault(*req.Image)
		ch.Image = &image
	}
	ch.Available = req.Available
	ch.Selected = req.Selected

	d, err := s.dishes.Update(ctx, id, ch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.dishes.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDishNotFound
		}
		return err
	}
	return nil
}

func cleanName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" || utf8.RuneCountInString(name) > maxNameLen {
		return "", ErrInvalidName
	}
	return name, nil
}

func imageOrDefault(raw string) string {
	if image := strings.TrimSpace(raw); image != "" {
		return image
	}
	return domain.DefaultDishImage
}
