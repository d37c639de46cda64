package domain

import "errors"

// Base error kinds, matched with errors.Is in the delivery layer.
var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrAuth       = errors.New("unauthorized")
)

// KindError carries a user-facing message on top of one of the base kinds.
type KindError struct {
	Kind    error
	Message string
}

func (e *KindError) Error() string { return e.Message }

func (e *KindError) Unwrap() error { return e.Kind }

// E builds a classified error: domain.E(domain.ErrNotFound, "student not found").
func E(kind error, msg string) error {
	return &KindError{Kind: kind, Message: msg}
}
