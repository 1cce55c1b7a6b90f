package models

import "errors"

// Sentinel errors for the storefront core. Repositories and services wrap
// them with context; handlers translate them to HTTP statuses with
// errors.Is.
var (
	// ErrNotFound means a referenced top-level record (user, order) is absent.
	ErrNotFound = errors.New("record not found")
	// ErrItemNotFound means a named entry inside an embedded item list is absent.
	ErrItemNotFound = errors.New("item not found")
	// ErrDuplicateEmail means a signup collided with an existing user's email.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidInput means a required field was missing or empty.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials means a login attempt failed. Deliberately does
	// not distinguish unknown email from wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
