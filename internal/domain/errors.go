package domain

import "errors"

var (
	ErrEmptyTitle      = errors.New("session title cannot be empty")
	ErrInvalidStatus   = errors.New("invalid session status")
	ErrInvalidTMs      = errors.New("transcript offset out of range")
	ErrSessionNotFound = errors.New("session not found")
)
