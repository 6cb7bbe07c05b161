package domain

import (
	"errors"
)

// Sentinel errors - use with errors.Is()
var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrNotConfigured = errors.New("database not configured")
)
