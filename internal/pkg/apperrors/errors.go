package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Authentication errors
	ErrNotAuthenticated   = errors.New("no signed-in principal")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Principal errors
var (
	ErrPrincipalNotFound  = errors.New("principal not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)
