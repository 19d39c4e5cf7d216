package domain

import "fmt"

// ValidationError reports malformed input on a specific field. Handlers
// surface it as a 400 with the field name attached.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
