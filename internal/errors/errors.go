// Package errors defines the status codes returned by the ESX container and
// its codecs.
//
// Every failure is an *Error carrying a Status. Callers match on the status
// with the standard library:
//
//	if errors.Is(err, esxerrors.OutOfRange) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Status classifies a failure.
type Status int

const (
	// InvalidFormat means the input is not an ESX image.
	InvalidFormat Status = iota + 1
	// OutOfRange means an access went beyond the current buffer or table.
	OutOfRange
	// UnsupportedFormat means audio or a request the core cannot handle.
	UnsupportedFormat
	// SlotKindMismatch means a mono header or payload was aimed at a stereo
	// slot, or the reverse.
	SlotKindMismatch
	// UnrecognizedRecordLayout means a header is neither mono nor stereo
	// sized and cannot be encoded.
	UnrecognizedRecordLayout
)

var statusNames = map[Status]string{
	InvalidFormat:            "invalid format",
	OutOfRange:               "out of range",
	UnsupportedFormat:        "unsupported format",
	SlotKindMismatch:         "slot kind mismatch",
	UnrecognizedRecordLayout: "unrecognized record layout",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Error implements error.
func (s Status) Error() string { return s.String() }

// With returns an error with the given message.
func (s Status) With(v ...interface{}) *Error {
	return &Error{Code: s, Message: fmt.Sprint(v...)}
}

// WithFormat returns an error with a formatted message. A %w verb in the
// format becomes the cause.
func (s Status) WithFormat(format string, args ...interface{}) *Error {
	err := fmt.Errorf(format, args...)
	e := &Error{Code: s, Message: err.Error()}
	if u := errors.Unwrap(err); u != nil {
		e.Cause = u
	}
	return e
}

// Wrap returns err with this status attached, or nil if err is nil. An
// existing *Error is returned unchanged.
func (s Status) Wrap(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Code: s, Message: err.Error(), Cause: err}
}

// Error is a failure with a status code.
type Error struct {
	Code    Status
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code.String()
	}
	return e.Code.String() + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is the same status as e.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Status:
		return e.Code == t
	case *Error:
		return e.Code == t.Code
	}
	return false
}

// Code returns the status of err, or 0 if err does not carry one.
func Code(err error) Status {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var s Status
	if errors.As(err, &s) {
		return s
	}
	return 0
}
