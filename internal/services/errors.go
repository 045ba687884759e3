package services

import "errors"

// Failure taxonomy shared by every service. The API boundary translates
// these into HTTP statuses; anything else is treated as an internal error.
var (
	ErrNotFound      = errors.New("not found")
	ErrNoCredential  = errors.New("no credential set")
	ErrDeactivated   = errors.New("employee deactivated")
	ErrBadCredential = errors.New("invalid credentials")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrConflict      = errors.New("conflict")
	ErrValidation    = errors.New("invalid input")
)
