package services

import (
	"errors"
	"fmt"
)

// ErrorType represents the type/category of error
type ErrorType string

const (
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeValidation   ErrorType = "validation"
	ErrorTypeBadRequest   ErrorType = "bad_request"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeForbidden    ErrorType = "forbidden"
	ErrorTypeConflict     ErrorType = "conflict"
	ErrorTypeInternal     ErrorType = "internal"
)

// DomainError represents a structured error with additional context.
// Message is safe to show to API clients; Err is not.
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
	Details map[string]interface{}
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is. Two domain errors match when type and message match.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithDetail returns a copy of the error with an extra detail, leaving shared sentinels untouched
func (e *DomainError) WithDetail(key string, value interface{}) *DomainError {
	details := make(map[string]interface{}, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	return &DomainError{Type: e.Type, Message: e.Message, Err: e.Err, Details: details}
}

// NewDomainError creates a new domain error
func NewDomainError(errType ErrorType, message string, err error) *DomainError {
	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
		Details: make(map[string]interface{}),
	}
}

// Client-facing messages
const (
	MsgItemNotFound       = "Item not found"
	MsgItemAlreadyExists  = "Item already exists"
	MsgUserAlreadyExists  = "User already exists, please login"
	MsgInvalidCredentials = "User or password invalid"
	MsgUnauthorized       = "Unauthorized"
	MsgForbiddenBlog      = "You are not allowed to modify this blog"
	MsgInvalidID          = "Invalid ID"
	MsgCategoryInUse      = "Category is still used by blogs"
	MsgPasswordTooLong    = "Password must be at most 72 bytes long"
	MsgInternalServer     = "Internal Server Error"
)

// Domain error variables

var (
	// Not Found Errors
	ErrItemNotFound = NewDomainError(ErrorTypeNotFound, MsgItemNotFound, nil)

	// Bad request errors. Unknown email and wrong password share one error.
	ErrInvalidCredentials = NewDomainError(ErrorTypeBadRequest, MsgInvalidCredentials, nil)
	ErrCategoryInUse      = NewDomainError(ErrorTypeBadRequest, MsgCategoryInUse, nil)

	// Validation Errors
	ErrInvalidCategory = NewDomainError(ErrorTypeValidation, MsgInvalidID, nil).WithDetail("field", "category")
	ErrPasswordTooLong = NewDomainError(ErrorTypeValidation, MsgPasswordTooLong, nil).WithDetail("field", "password")

	// Authorization Errors
	ErrUnauthorized = NewDomainError(ErrorTypeUnauthorized, MsgUnauthorized, nil)

	// Permission Errors
	ErrForbiddenBlog = NewDomainError(ErrorTypeForbidden, MsgForbiddenBlog, nil)

	// Conflict Errors
	ErrItemExists = NewDomainError(ErrorTypeConflict, MsgItemAlreadyExists, nil)
	ErrUserExists = NewDomainError(ErrorTypeConflict, MsgUserAlreadyExists, nil)

	// Internal Errors
	ErrInternal = NewDomainError(ErrorTypeInternal, MsgInternalServer, nil)
)

// Error type checking helper functions

// IsNotFoundError checks if an error is a not found error
func IsNotFoundError(err error) bool {
	return GetErrorType(err) == ErrorTypeNotFound
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return GetErrorType(err) == ErrorTypeValidation
}

// IsBadRequestError checks if an error is a plain bad request error
func IsBadRequestError(err error) bool {
	return GetErrorType(err) == ErrorTypeBadRequest
}

// IsUnauthorizedError checks if an error is an unauthorized error
func IsUnauthorizedError(err error) bool {
	return GetErrorType(err) == ErrorTypeUnauthorized
}

// IsForbiddenError checks if an error is a forbidden error
func IsForbiddenError(err error) bool {
	return GetErrorType(err) == ErrorTypeForbidden
}

// IsConflictError checks if an error is a conflict error
func IsConflictError(err error) bool {
	return GetErrorType(err) == ErrorTypeConflict
}

// IsInternalError checks if an error is an internal error
func IsInternalError(err error) bool {
	return GetErrorType(err) == ErrorTypeInternal
}

// GetErrorType returns the ErrorType of a domain error, or empty string if not a domain error
func GetErrorType(err error) ErrorType {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type
	}
	return ""
}

// GetErrorDetails returns the details map of a domain error, or nil if not a domain error
func GetErrorDetails(err error) map[string]interface{} {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Details
	}
	return nil
}

// GetErrorMessage returns the client-facing message of a domain error
func GetErrorMessage(err error) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return ""
}

// WrapError wraps an error with additional context
func WrapError(errType ErrorType, message string, err error) error {
	return NewDomainError(errType, message, err)
}

// WrapInternal wraps an error as an internal error.
// The client message is always MsgInternalServer; message only annotates the cause.
func WrapInternal(message string, err error) error {
	return NewDomainError(ErrorTypeInternal, MsgInternalServer, fmt.Errorf("%s: %w", message, err))
}
