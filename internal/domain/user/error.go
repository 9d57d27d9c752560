package user

import "errors"

var (
	ErrNotFound     = errors.New("user not found")
	ErrDuplicate    = errors.New("user already registered")
	ErrInvalidAuth  = errors.New("invalid credentials")
	ErrInvalidToken = errors.New("invalid identity token")
	ErrInvalidInput = errors.New("invalid input")
)
