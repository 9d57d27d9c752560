package file

import "errors"

var (
	ErrNotFound      = errors.New("file not found")
	ErrTooLarge      = errors.New("file size exceeds 50MB limit")
	ErrForbiddenType = errors.New("executable files are not allowed for security reasons")
	ErrInvalidInput  = errors.New("invalid input")
)
