package selection

import (
	"context"
	"fmt"

	"familykitchen/internal/domain"
)

type Service struct {
	selections SelectionRepository
	dishes     DishChecker
}

func NewService(selections SelectionRepository, dishes DishChecker) *Service {
	return &Service{
		selections: selections,
		dishes:     dishes,
	}
}

// Toggle adds the user's selection of a dish, or removes it when present.
func (s *Service) Toggle(ctx context.Context, user *domain.User, dishID int64) (*ToggleResponse, error) {
	ok, err := s.dishes.Exists(ctx, dishID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrDishNotFound
	}

	selected, err := s.selections.Toggle(ctx, dishID, user.ID, user.MemberName())
	if err != nil {
		return nil, fmt.Errorf("toggle selection: %w", err)
	}
	return &ToggleResponse{Selected: selected}, nil
}
