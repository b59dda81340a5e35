package selection

import "context"

type SelectionRepository interface {
	Toggle(ctx context.Context, dishID, userID int64, memberName string) (bool, error)
}

type DishChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
