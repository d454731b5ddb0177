package handler

import "errors"

// Sentinel errors for the handler registry.
var (
	ErrNotFound      = errors.New("handler not found")
	ErrAlreadyExists = errors.New("handler already registered")
	ErrEmptyName     = errors.New("handler name is empty")
	ErrNilHandler    = errors.New("handler is nil")
)
