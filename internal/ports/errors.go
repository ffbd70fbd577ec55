package ports

import (
	"errors"
	"fmt"
	"time"
)

// Common infrastructure errors that can occur during external service
// interactions.
var (
	// ErrAPIKeyMissing indicates that the generator's access credential
	// is not configured. Generation must fail explicitly in this case.
	ErrAPIKeyMissing = errors.New("api key is not configured")

	// ErrRateLimited indicates that the service has rate limited the request.
	ErrRateLimited = errors.New("rate limited")

	// ErrServiceUnavailable indicates that the external service is unavailable.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrTimeout indicates that an operation timed out.
	ErrTimeout = errors.New("operation timed out")

	// ErrEmptyResponse indicates that the service returned no content.
	ErrEmptyResponse = errors.New("empty response")

	// ErrInvalidResponse indicates that the service returned a response
	// that does not match the expected shape.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrAuthenticationFailed indicates that authentication with the
	// service failed.
	ErrAuthenticationFailed = errors.New("authentication failed")
)

// GeneratorError represents a failure of the sample-data generator.
// It includes details about the model and operation, plus any rate limit
// information the service returned.
type GeneratorError struct {
	// Model is the identifier of the model that generated the error.
	Model string

	// Operation is the name of the operation that failed.
	Operation string

	// Err is the underlying error that occurred.
	Err error

	// RetryAfter indicates how long to wait before retrying, if applicable.
	RetryAfter *time.Duration
}

// Error implements the error interface for GeneratorError.
func (e *GeneratorError) Error() string {
	msg := fmt.Sprintf("generator error: model=%s, operation=%s, err=%v", e.Model, e.Operation, e.Err)
	if e.RetryAfter != nil {
		msg += fmt.Sprintf(", retry_after=%v", *e.RetryAfter)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *GeneratorError) Unwrap() error { return e.Err }

// IsRetryable returns true if the error is temporary and the operation
// can be retried.
func (e *GeneratorError) IsRetryable() bool {
	// Only network/service-level errors are retryable; logic errors are not.
	return errors.Is(e.Err, ErrRateLimited) ||
		errors.Is(e.Err, ErrServiceUnavailable) ||
		errors.Is(e.Err, ErrTimeout)
}

// NewGeneratorError creates a new GeneratorError with the given details.
func NewGeneratorError(model, operation string, err error) *GeneratorError {
	return &GeneratorError{
		Model:     model,
		Operation: operation,
		Err:       err,
	}
}

// StorageError represents a failure of the persistence adapter.
// It includes the storage key and operation that failed.
type StorageError struct {
	// Key is the storage key involved in the failed operation.
	Key string

	// Operation is the name of the storage operation that failed.
	Operation string

	// Err is the underlying error that caused the operation to fail.
	Err error
}

// Error implements the error interface for StorageError.
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: operation=%s, key=%s, err=%v", e.Operation, e.Key, e.Err)
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error { return e.Err }

// NewStorageError creates a new StorageError with the given details.
func NewStorageError(key, operation string, err error) *StorageError {
	return &StorageError{
		Key:       key,
		Operation: operation,
		Err:       err,
	}
}
