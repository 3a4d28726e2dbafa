package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Payphone-Digital/content-gateway/pkg/content"
)

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error // underlying error for wrapping
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is and errors.As
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches domain errors by code so wrapped copies compare equal to the
// predefined values.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if errors.As(target, &t) {
		return t.Code == e.Code
	}
	return false
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error with domain error context
func WrapError(domainErr *DomainError, err error) *DomainError {
	return &DomainError{
		Code:    domainErr.Code,
		Message: domainErr.Message,
		Err:     err,
	}
}

// Predefined domain errors
var (
	// Content errors
	ErrContentNotFound       = NewDomainError("CONTENT_NOT_FOUND", "content not found")
	ErrContentUpstreamFailed = NewDomainError("CONTENT_UPSTREAM_FAILED", "content backend returned an error")
	ErrContentUnavailable    = NewDomainError("CONTENT_UNAVAILABLE", "content backend unreachable")
	ErrContentDecodeFailed   = NewDomainError("CONTENT_DECODE_FAILED", "content backend returned an invalid response")

	// Validation errors
	ErrInvalidInput = NewDomainError("INVALID_INPUT", "invalid input")

	// System errors
	ErrInternal = NewDomainError("INTERNAL_ERROR", "internal server error")
)

// FromContentError maps a content client failure onto a domain error. A 404
// from the backend becomes ErrContentNotFound.
func FromContentError(err error) *DomainError {
	if err == nil {
		return nil
	}

	var cerr *content.Error
	if !errors.As(err, &cerr) {
		if errors.Is(err, content.ErrEmptyCollection) {
			return WrapError(ErrInvalidInput, err)
		}
		return WrapError(ErrInternal, err)
	}

	switch cerr.Kind {
	case content.KindRequestFailed:
		if cerr.StatusCode == http.StatusNotFound {
			return WrapError(ErrContentNotFound, err)
		}
		return WrapError(ErrContentUpstreamFailed, err)
	case content.KindTransport:
		return WrapError(ErrContentUnavailable, err)
	case content.KindDecode:
		return WrapError(ErrContentDecodeFailed, err)
	default:
		return WrapError(ErrInternal, err)
	}
}

// GetDomainError extracts the domain error from an error
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// ToHTTPStatus maps domain errors to HTTP status codes
// This should only be used in the handler/presentation layer
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	// Check if it's a domain error
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErrorToHTTPStatus(domainErr)
	}

	// Default to internal server error for unknown errors
	return http.StatusInternalServerError
}

// domainErrorToHTTPStatus maps specific domain errors to HTTP status codes
func domainErrorToHTTPStatus(err *DomainError) int {
	switch err.Code {
	// 400 Bad Request
	case "INVALID_INPUT":
		return http.StatusBadRequest

	// 404 Not Found
	case "CONTENT_NOT_FOUND":
		return http.StatusNotFound

	// 502 Bad Gateway
	case "CONTENT_UPSTREAM_FAILED", "CONTENT_DECODE_FAILED":
		return http.StatusBadGateway

	// 503 Service Unavailable
	case "CONTENT_UNAVAILABLE":
		return http.StatusServiceUnavailable

	// 500 Internal Server Error (default)
	default:
		return http.StatusInternalServerError
	}
}

// GetErrorMessage safely extracts error message
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	return err.Error()
}
