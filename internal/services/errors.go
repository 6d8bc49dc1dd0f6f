package services

import "errors"

// Domain errors raised by the entity services. The repositories report an
// absent row as an empty result; translating that into a not-found happens
// here.
var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrUserNotFound     = errors.New("user not found")

	// ErrUnknownCategory rejects question creation against a category id
	// that does not reference an existing category.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrInvalidCredentials reports a failed password comparison on login.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
