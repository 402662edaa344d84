package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/flashdeck/internal/domain"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check for them with errors.Is; the API layer maps them to HTTP
// status codes.
var (
	// ErrNoFlashcardsGenerated indicates that neither the model nor the
	// heuristic fallback produced a pair. Nothing is persisted.
	ErrNoFlashcardsGenerated = errors.New("no flashcards could be generated from the notes")

	// ErrInvalidCredentials indicates an unknown email or a wrong password.
	// Both cases share one error so login does not reveal registered emails.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ServiceError adds the failing service and operation to an unexpected error.
type ServiceError struct {
	Service   string
	Operation string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s service %s failed: %v", e.Service, e.Operation, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, operation string, err error) *ServiceError {
	return &ServiceError{
		Service:   service,
		Operation: operation,
		Err:       err,
	}
}

// invalidField wraps a domain rule violation so that it matches
// domain.ErrValidation as well as the original rule error.
func invalidField(field string, err error) error {
	return domain.NewValidationError(field, "is invalid", fmt.Errorf("%w: %w", domain.ErrValidation, err))
}

func isValidationError(err error) bool {
	return errors.Is(err, domain.ErrValidation)
}
