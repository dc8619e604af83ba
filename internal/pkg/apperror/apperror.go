// Package apperror tags failures with a category so the transport boundary can
// classify them without looking at the message text.
package apperror

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "unexpected"
	}
}

// Error is a categorized failure. Err holds the cause (often a domain sentinel)
// and is never shown to clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && KindOf(e.Err) == KindUnexpected {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the category of the error. Any error type with this method
// takes part in classification.
func (e *Error) KindOf() Kind {
	return e.Kind
}

// New creates a categorized error, typically used for package-level sentinels.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap returns a new error with a value-specific message that keeps the
// category of cause and still matches cause with errors.Is.
func Wrap(cause error, message string) *Error {
	return &Error{Kind: KindOf(cause), Message: message, Err: cause}
}

func Validation(message string) *Error {
	return New(KindValidation, message)
}

func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

func Conflict(message string) *Error {
	return New(KindConflict, message)
}

type kinded interface {
	KindOf() Kind
}

// KindOf returns the category of the first categorized error in the chain,
// or KindUnexpected when nothing in the chain carries one.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnexpected
	}
	var k kinded
	if errors.As(err, &k) {
		return k.KindOf()
	}
	return KindUnexpected
}

// Message returns the client-safe message of a categorized error. Unexpected
// errors yield an empty string.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindUnexpected {
		return appErr.Message
	}
	return ""
}
