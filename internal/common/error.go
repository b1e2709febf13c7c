// Package common defines shared helpers and sentinel errors used across
// WaterTrack components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound         = errors.New("not found")
	ErrRevisionConflict = errors.New("revision conflict")

	// Repository-level errors.
	ErrEntryNotFound = errors.New("entry not found")

	// Auth errors. Unknown email and wrong password deliberately share one
	// sentinel so callers cannot enumerate accounts.
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
)
