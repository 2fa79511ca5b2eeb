package domain

// ValidationError reports a request that is missing or misusing a required
// field. Its message is safe to return to the client verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation builds a ValidationError with the given client-facing message.
func Validation(message string) error {
	return &ValidationError{Message: message}
}
