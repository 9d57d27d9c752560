package text

import "errors"

var (
	ErrNotFound     = errors.New("text not found")
	ErrInvalidInput = errors.New("title and content are required")
)
