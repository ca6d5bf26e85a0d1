package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrVHSNotFound indicates the requested tape does not exist.
	ErrVHSNotFound = errors.New("vhs not found")

	// ErrVHSAlreadyExists indicates a tape with the same unique constraint already exists.
	ErrVHSAlreadyExists = errors.New("vhs already exists")

	// ErrInvalidVHS indicates the tape violates domain constraints.
	ErrInvalidVHS = errors.New("invalid vhs")
)
