package models

import "errors"

var (
	// ErrNotFound marks a lookup that matched nothing. Tool-facing code
	// turns it into an informational string, never a crash.
	ErrNotFound = errors.New("not found")

	// ErrInvalidMode marks a switch-mode request outside the mode enum.
	ErrInvalidMode = errors.New("invalid mode")
)
