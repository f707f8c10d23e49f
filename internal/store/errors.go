package store

import (
	"errors"
	"fmt"
)

// ErrorCode classifies store failures. Codes are stable strings: they appear
// in JSON error envelopes and in conformance scenarios, so they must not be
// renamed.
type ErrorCode string

const (
	ErrCodeInvalidServiceName ErrorCode = "INVALID_SERVICE_NAME"
	ErrCodeDuplicateEntry     ErrorCode = "DUPLICATE_ENTRY"
	ErrCodeEntryNotFound      ErrorCode = "ENTRY_NOT_FOUND"
	ErrCodeStorageIO          ErrorCode = "STORAGE_IO"
)

// Error is the typed failure returned by store operations.
//
// Service and Username carry the identifying pair for the domain errors that
// have one; they are empty on storage errors.
type Error struct {
	Code     ErrorCode
	Message  string
	Service  string
	Username string
	Err      error // underlying cause, storage errors only
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewInvalidServiceNameError reports a service name outside the allowed
// character set.
func NewInvalidServiceNameError(service string) *Error {
	return &Error{
		Code:    ErrCodeInvalidServiceName,
		Message: "invalid service name: use only alphanumeric characters, underscores, or hyphens",
		Service: service,
	}
}

// NewDuplicateEntryError reports an add for a (service, username) pair that
// already exists.
func NewDuplicateEntryError(service, username string) *Error {
	return &Error{
		Code:     ErrCodeDuplicateEntry,
		Message:  fmt.Sprintf("an entry for %s with username %s already exists", service, username),
		Service:  service,
		Username: username,
	}
}

// NewEntryNotFoundError reports a delete for a (service, username) pair that
// does not exist.
func NewEntryNotFoundError(service, username string) *Error {
	return &Error{
		Code:     ErrCodeEntryNotFound,
		Message:  fmt.Sprintf("no entry found for %s with username %s", service, username),
		Service:  service,
		Username: username,
	}
}

// NewStorageError reports a filesystem or CSV-level failure. The cause, when
// present, is folded into the message and kept reachable through Unwrap.
func NewStorageError(message string, err error) *Error {
	if err != nil {
		message = fmt.Sprintf("%s: %v", message, err)
	}
	return &Error{
		Code:    ErrCodeStorageIO,
		Message: message,
		Err:     err,
	}
}

// CodeOf returns the error's code, or "" when err is not a store error.
func CodeOf(err error) ErrorCode {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

func is(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// IsInvalidServiceName reports whether err is a service-name validation
// failure.
func IsInvalidServiceName(err error) bool { return is(err, ErrCodeInvalidServiceName) }

// IsDuplicateEntry reports whether err is a duplicate (service, username)
// rejection.
func IsDuplicateEntry(err error) bool { return is(err, ErrCodeDuplicateEntry) }

// IsEntryNotFound reports whether err is a delete of a missing pair.
func IsEntryNotFound(err error) bool { return is(err, ErrCodeEntryNotFound) }

// IsStorageIO reports whether err is a filesystem or CSV-level failure.
func IsStorageIO(err error) bool { return is(err, ErrCodeStorageIO) }
