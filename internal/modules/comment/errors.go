package comment

import "errors"

var (
	ErrDishNotFound    = errors.New("dish not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrInvalidText     = errors.New("comment text must be 1-1000 characters")
	ErrForbidden       = errors.New("not allowed to modify this comment")
)
