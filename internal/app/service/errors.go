package service

import "errors"

var (
	ErrInvalidURL = errors.New("invalid URL format")
	ErrCodeInUse  = errors.New("short code already in use")
	ErrNotFound   = errors.New("short code not found")

	// ErrConflict is returned together with the existing code when the
	// original URL has already been shortened.
	ErrConflict = errors.New("URL already shortened")
)
