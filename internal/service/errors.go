package service

import "errors"

// Client-facing errors; handlers map these to 4xx responses. Anything else
// from the service layer is a store failure.
var (
	ErrDealerNotFound  = errors.New("dealer not found")
	ErrCarNotFound     = errors.New("car not found")
	ErrProfileNotFound = errors.New("no dealer profile found")
	ErrProfileExists   = errors.New("user already registered as dealer")
	ErrMissingField    = errors.New("missing required field")
	ErrNoFields        = errors.New("no fields to update")
)
