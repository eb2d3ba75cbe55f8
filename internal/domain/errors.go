package domain

import "errors"

// Business errors. Repos and services return these unwrapped so handlers can
// map them to status codes; anything else is treated as a store failure and
// surfaces as a 500 (retryable at the caller's discretion, never swallowed).
var (
	ErrBadCreds          = errors.New("invalid username or password")
	ErrUserExists        = errors.New("username or email already exists")
	ErrNoPet             = errors.New("no pet found")
	ErrAlreadyHasPet     = errors.New("user already has a pet")
	ErrInvalidSpecies    = errors.New("invalid species id")
	ErrItemNotFound      = errors.New("item not found")
	ErrEntryNotFound     = errors.New("inventory entry not found")
	ErrInsufficientGears = errors.New("insufficient gears")
)
