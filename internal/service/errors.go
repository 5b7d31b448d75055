package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidPassword means the submitted current password did not match.
	ErrInvalidPassword = errors.New("invalid password")
)

// ValidationError reports the input fields that are missing or invalid.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, ", "))
}

// FieldList joins the violated field names for user-facing messages.
func (e *ValidationError) FieldList() string {
	return strings.Join(e.Fields, ", ")
}

func newValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// PasswordPolicyError means a new password violates the configured policy.
type PasswordPolicyError struct {
	MinLength int
}

func (e *PasswordPolicyError) Error() string {
	return fmt.Sprintf("password must be at least %d characters", e.MinLength)
}
