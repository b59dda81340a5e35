package selection

import "errors"

var ErrDishNotFound = errors.New("dish not found")
