package ingredient

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"familykitchen/internal/database"
	"familykitchen/internal/domain"

	"gorm.io/gorm"
)

const maxNameLen = 100

type Service struct {
	repo IngredientRepository
}

func NewService(repo IngredientRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Ingredient, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateIngredientRequest) (*domain.Ingredient, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || utf8.RuneCountInString(name) > maxNameLen {
		return nil, ErrInvalidName
	}

	ing, err := s.repo.Create(ctx, name)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrIngredientExists
		}
		return nil, err
	}
	return ing, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIngredientNotFound
		}
		return err
	}
	return nil
}
