package entities

import "errors"

// Ошибки хранилища.
var (
	ErrNotFound          = errors.New("entity not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrPersistence       = errors.New("snapshot persistence failed")
	ErrEmptyUsername     = errors.New("username cannot be empty")
)
