// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package checktica

import (
	"errors"
	"fmt"
)

// Kind classifies a Checktica failure.
type Kind int

const (
	// KindInvalidArgument reports caller input that was rejected before any
	// network call was made.
	KindInvalidArgument Kind = iota + 1

	// KindAPIAccess reports a request that could not be completed because the
	// connection failed or the attempt timed out.
	KindAPIAccess

	// KindLimitExceeded reports that the API rejected the request with
	// HTTP 429 because the caller's quota was used up.
	KindLimitExceeded

	// KindInvalidResponse reports an unexpected status code or a success
	// body that could not be decoded into a Result.
	KindInvalidResponse
)

// String returns the kind name used in logs and error messages.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindAPIAccess:
		return "api_access"
	case KindLimitExceeded:
		return "limit_exceeded"
	case KindInvalidResponse:
		return "invalid_response"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) defaultMessage() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindAPIAccess:
		return "the Checktica API could not be reached"
	case KindLimitExceeded:
		return DefaultLimitMessage
	case KindInvalidResponse:
		return unknownAPIErrorMessage
	default:
		return "unknown error"
	}
}

// Error is the single error type returned by this package. Use errors.As to
// catch every Checktica failure, or errors.Is with one of the Err* sentinels
// to match a single kind.
type Error struct {
	// Kind classifies the failure.
	Kind Kind

	// Message is a human-readable description. If empty, a default message
	// for the kind is used.
	Message string

	// StatusCode is the HTTP status returned by the API, or 0 when no
	// response was received.
	StatusCode int

	// Err is the underlying cause, if any.
	Err error
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrAPIAccess       = &Error{Kind: KindAPIAccess}
	ErrLimitExceeded   = &Error{Kind: KindLimitExceeded}
	ErrInvalidResponse = &Error{Kind: KindInvalidResponse}
)

func newError(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Err: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.defaultMessage()
	}
	if e.Err != nil {
		return fmt.Sprintf("checktica: %s: %v", msg, e.Err)
	}
	return "checktica: " + msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a bare sentinel of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Message != "" || t.Err != nil || t.StatusCode != 0 {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or 0 if err
// is not a Checktica error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsRetryable reports whether a failed attempt may be repeated. Rate-limit
// errors are never retried so the API's usage policy is respected, and
// invalid arguments cannot succeed on a second try.
func IsRetryable(err error) bool {
	switch KindOf(err) {
	case KindAPIAccess, KindInvalidResponse:
		return true
	default:
		return false
	}
}
