// Package errors defines the business error taxonomy. Every rule violation
// carries a stable machine-readable code that the HTTP layer maps to a status;
// none of them is retried automatically.
package errors

// DomainError is a business-rule failure with a stable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches errors by code so wrapped and reworded instances of the same
// failure compare equal under errors.Is.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithMessage returns a copy of the error carrying a contextual message while
// keeping the same code.
func (e *DomainError) WithMessage(message string) *DomainError {
	return &DomainError{Code: e.Code, Message: message}
}
