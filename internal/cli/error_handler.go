package cli

import (
	"fmt"

	"activity-sampler/internal/errors"
	"activity-sampler/internal/validation"
)

// Process exit statuses
const (
	ExitFailure     = 1
	ExitUsage       = 2
	ExitUnavailable = 3
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// handledError is a user facing message that keeps its cause reachable for
// classification
type handledError struct {
	message string
	cause   error
}

func (e *handledError) Error() string { return e.message }
func (e *handledError) Unwrap() error { return e.cause }

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	return &handledError{
		message: fmt.Sprintf("failed to %s: %s", operation, eh.userMessage(err)),
		cause:   err,
	}
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if err == nil {
		return nil
	}
	if handled, ok := err.(*handledError); ok {
		return handled
	}
	return &handledError{message: eh.userMessage(err), cause: err}
}

func (eh *ErrorHandler) userMessage(err error) string {
	if validationErr, ok := err.(*validation.ValidationError); ok {
		return validationErr.GetUserFriendlyMessage()
	}
	if _, ok := errors.AsAppError(err); ok {
		return errors.GetUserMessage(err)
	}
	return err.Error()
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsStorageError checks if an error comes from the event store
func (eh *ErrorHandler) IsStorageError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeStorage)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}

// IsTimeoutError checks if an operation ran past the application timeout
func (eh *ErrorHandler) IsTimeoutError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeTimeout)
}

// ExitCode maps err to the process exit status. Rejected input and
// configuration exit with ExitUsage, an unusable or slow activity log with
// ExitUnavailable.
func (eh *ErrorHandler) ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case eh.IsValidationError(err),
		errors.IsErrorType(err, errors.ErrorTypeInvalidInput),
		errors.IsErrorType(err, errors.ErrorTypeConfiguration):
		return ExitUsage
	case eh.IsStorageError(err), eh.IsTimeoutError(err):
		return ExitUnavailable
	default:
		return ExitFailure
	}
}
