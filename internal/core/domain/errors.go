package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNoMessages indicates an empty conversation was submitted.
	// The wording is part of the tool's caller-visible contract.
	ErrNoMessages = errors.New("No messages provided")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
