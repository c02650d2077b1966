package services

import (
	"errors"
	"fmt"
)

// ErrInvalidInput означает, что данные запроса не прошли проверку.
var ErrInvalidInput = errors.New("invalid input")

// FieldError описывает ошибку конкретного поля.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap позволяет сравнивать FieldError с ErrInvalidInput.
func (e *FieldError) Unwrap() error {
	return ErrInvalidInput
}

// NewFieldError создает ошибку проверки поля.
func NewFieldError(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}
