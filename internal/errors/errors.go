package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/pomolit/internal/logger"
)

var (
	// ErrNotFound is returned when a session, task, habit, event or achievement does not exist
	ErrNotFound = errors.New("not found")
	// ErrValidation is returned when user input cannot be accepted as-is
	ErrValidation = errors.New("validation failed")
	// ErrTermsNotAccepted is returned when the terms of use have not been accepted yet
	ErrTermsNotAccepted = errors.New("terms not accepted")
)

// NotFoundf wraps ErrNotFound with a description of the missing entity
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

// Validationf wraps ErrValidation with a user-facing message
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrValidation)
}

// IsNotFound reports whether err is, or wraps, ErrNotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation reports whether err is, or wraps, ErrValidation
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
