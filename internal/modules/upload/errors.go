package upload

import "errors"

var (
	ErrUploadNotFound  = errors.New("upload not found")
	ErrFileTooLarge    = errors.New("file exceeds maximum allowed size")
	ErrInvalidMimeType = errors.New("only jpeg, png, gif and webp images are allowed")
	ErrEmptyFile       = errors.New("file is empty")
)
