package apperrors

import "errors"

// Normalization errors. Both are recoverable: a meeting that fails
// normalization is marked non-schedulable and the request proceeds.
var (
	ErrUnparseableTime = errors.New("unparseable time")
	ErrUnparseableDay  = errors.New("unparseable day")
)

// Catalog errors
var (
	// ErrCatalogNotLoaded is fatal to the request but not to the process;
	// callers should retry after a catalog refresh completes.
	ErrCatalogNotLoaded = errors.New("catalog not loaded")
	ErrCourseNotFound   = errors.New("course not found")
	ErrInvalidCatalog   = errors.New("invalid catalog data")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// NewCatalogNotLoadedError creates a custom error for requests arriving
// before the first catalog load completes
func NewCatalogNotLoadedError(message string) error {
	return &CustomError{
		Err:     ErrCatalogNotLoaded,
		Message: message,
	}
}

// NewCourseNotFoundError creates a custom error for unknown course identifiers
func NewCourseNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrCourseNotFound,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
