package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

// Code classifies an error for the HTTP layer and the logs.
type Code string

const (
	CodeValidation  Code = "VALIDATION_ERROR"
	CodeNotFound    Code = "NOT_FOUND"
	CodeIdempotency Code = "IDEMPOTENCY_KEY_REUSED"
	CodeInternal    Code = "INTERNAL_ERROR"
	// CodeDependency covers storage and cache failures. The API never retries them itself.
	CodeDependency Code = "DEPENDENCY_ERROR"
)

// Metadata describes how a code is presented to API clients.
type Metadata struct {
	HTTPStatus int
	// Retryable tells clients the same request may succeed later.
	Retryable     bool
	PublicMessage string
	// ExposeMessage lets the error's own message replace PublicMessage.
	ExposeMessage  bool
	DetailsAllowed bool
}

var metadataByCode = map[Code]Metadata{
	CodeValidation:  {HTTPStatus: http.StatusBadRequest, PublicMessage: "invalid wishlist request", ExposeMessage: true, DetailsAllowed: true},
	CodeNotFound:    {HTTPStatus: http.StatusNotFound, PublicMessage: "wishlist item not found", ExposeMessage: true},
	CodeIdempotency: {HTTPStatus: http.StatusConflict, PublicMessage: "idempotency key reused", ExposeMessage: true, DetailsAllowed: true},
	CodeInternal:    {HTTPStatus: http.StatusInternalServerError, Retryable: true, PublicMessage: "internal server error"},
	CodeDependency:  {HTTPStatus: http.StatusServiceUnavailable, Retryable: true, PublicMessage: "wishlist storage unavailable"},
}

// MetadataFor falls back to CodeInternal for unknown codes.
func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

// Error is a coded error with an optional cause and client-facing details.
type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

// WithDetails sets details in place and returns e for chaining.
func (e *Error) WithDetails(details any) *Error {
	if e != nil {
		e.details = details
	}
	return e
}

// PublicMessage is what an API client may see for e.
func (e *Error) PublicMessage() string {
	meta := MetadataFor(e.Code())
	if meta.ExposeMessage && e.Message() != "" {
		return e.Message()
	}
	return meta.PublicMessage
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// As returns the first *Error in err's chain, or nil.
func As(err error) *Error {
	var typed *Error
	if err != nil && stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

// IsCode reports whether the first *Error in err's chain carries code.
func IsCode(err error, code Code) bool {
	typed := As(err)
	return typed != nil && typed.Code() == code
}

// StatusOf maps err to its HTTP status; untyped errors are 500.
func StatusOf(err error) int {
	if typed := As(err); typed != nil {
		return MetadataFor(typed.Code()).HTTPStatus
	}
	return http.StatusInternalServerError
}
