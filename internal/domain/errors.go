package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// External profile errors
	ErrMsgUnreachable = "codewars profile unreachable"

	// User errors
	ErrMsgUserNotFound      = "user not found"
	ErrMsgDuplicateIdentity = "identity already registered"
	ErrMsgDuplicateUsername = "codewars username already registered"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrUnreachable means the external profile fetch failed: network error,
	// non-success status or a body that could not be decoded.
	ErrUnreachable = errors.New(ErrMsgUnreachable)

	// ErrNotFound means no record exists for the platform identity.
	ErrNotFound = errors.New(ErrMsgUserNotFound)

	// ErrDuplicateIdentity means the platform identity already has a record.
	ErrDuplicateIdentity = errors.New(ErrMsgDuplicateIdentity)

	// ErrDuplicateUsername means another identity already owns the username.
	ErrDuplicateUsername = errors.New(ErrMsgDuplicateUsername)

	// ErrInvalidInput means a required command argument was missing or malformed.
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
