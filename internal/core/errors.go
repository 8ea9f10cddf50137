package core

import "errors"

var (
	// ErrSurfaceUnavailable is reported when a widget has nothing to draw on.
	// Widgets treat it as a no-op; only hosts surface it to the user.
	ErrSurfaceUnavailable = errors.New("core: drawing surface unavailable")

	// ErrInvalidInput marks input a widget does not understand.
	// It is never fatal: the input is dropped.
	ErrInvalidInput = errors.New("core: invalid input")
)
