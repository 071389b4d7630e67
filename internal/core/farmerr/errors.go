// Package farmerr defines the error taxonomy shared by repositories,
// the normalizer and the presentation layer.
package farmerr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an error so callers can react without parsing messages.
type Kind int

const (
	// KindInvalidIdentifier means an identifier failed to parse to an integer.
	KindInvalidIdentifier Kind = iota + 1
	// KindValidation means a payload violated an entity invariant or the
	// store rejected specific fields.
	KindValidation
	// KindNotFound means the requested entity does not exist.
	KindNotFound
	// KindOutOfRange means a stock update fell outside [0, maxCapacity].
	KindOutOfRange
	// KindStore means the store call itself failed and may be retried.
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindInvalidIdentifier:
		return "InvalidIdentifier"
	case KindValidation:
		return "ValidationError"
	case KindNotFound:
		return "NotFound"
	case KindOutOfRange:
		return "OutOfRangeError"
	case KindStore:
		return "StoreError"
	}
	return "Unknown"
}

// FieldError is a single field-level message.
type FieldError struct {
	Field   string
	Message string
}

func (f FieldError) String() string {
	if f.Field == "" {
		return f.Message
	}
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

// Error is the concrete error type returned by this module.
type Error struct {
	Kind    Kind
	Op      string // e.g. "farm.create"
	Message string // human-readable, suitable for display
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if len(e.Fields) > 0 {
		parts := make([]string, len(e.Fields))
		for i, f := range e.Fields {
			parts[i] = f.String()
		}
		b.WriteString(" (")
		b.WriteString(strings.Join(parts, "; "))
		b.WriteString(")")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound)
// works regardless of message or op.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.Message == ""
}

// HasField reports whether the error carries a message for field.
func (e *Error) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Sentinels for errors.Is.
var (
	ErrInvalidIdentifier = &Error{Kind: KindInvalidIdentifier}
	ErrValidation        = &Error{Kind: KindValidation}
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrOutOfRange        = &Error{Kind: KindOutOfRange}
	ErrStore             = &Error{Kind: KindStore}
)

// InvalidIdentifier builds a KindInvalidIdentifier error.
func InvalidIdentifier(raw any) *Error {
	return &Error{
		Kind:    KindInvalidIdentifier,
		Message: fmt.Sprintf("invalid identifier %q: must be a positive whole number", fmt.Sprint(raw)),
	}
}

// Validation builds a KindValidation error from field messages.
func Validation(op, message string, fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: message, Fields: fields}
}

// NotFound builds a KindNotFound error.
func NotFound(op, entity string, id int64) *Error {
	return &Error{Kind: KindNotFound, Op: op, Message: fmt.Sprintf("%s %d not found", entity, id)}
}

// Gone builds a KindNotFound error for a record that disappeared between
// a read and a write.
func Gone(op, message string) *Error {
	if message == "" {
		message = "record no longer exists"
	}
	return &Error{Kind: KindNotFound, Op: op, Message: message}
}

// OutOfRange builds a KindOutOfRange error.
func OutOfRange(op string, value, max int) *Error {
	return &Error{
		Kind:    KindOutOfRange,
		Op:      op,
		Message: fmt.Sprintf("stock amount %d must be between 0 and maximum capacity %d", value, max),
	}
}

// Store builds a KindStore error.
func Store(op, message string, err error) *Error {
	if message == "" {
		message = "record store call failed"
	}
	return &Error{Kind: KindStore, Op: op, Message: message, Err: err}
}

// KindOf returns the Kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Retryable reports whether reissuing the same call may succeed.
func Retryable(err error) bool {
	return KindOf(err) == KindStore
}

// Message returns the display message of err without op or cause.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
