package domain

import (
	"errors"
	"fmt"
)

// Kind classifies an error for HTTP mapping and notification routing.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation is a missing or malformed request parameter.
	KindValidation
	// KindNotFound means the requested record matched nothing.
	KindNotFound
	// KindResolution means a link had no matching object in its includes
	// table. This is a content source integrity problem, not a client error.
	KindResolution
	// KindUpstream means the content source or store was unreachable or
	// rejected the request.
	KindUpstream
)

// Error is the service error value. Op names the originating operation and is
// set at construction so notifications can be tagged without mutating errors
// after the fact.
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// E wraps err with an operation name and kind.
func E(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Validation builds a validation error with a formatted message.
func Validation(op, format string, args ...any) *Error {
	return &Error{Op: op, Kind: KindValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound builds a not-found error for the given record id.
func NotFound(op, id string) *Error {
	return &Error{Op: op, Kind: KindNotFound, Err: fmt.Errorf("no record for %q", id)}
}

// Resolution builds a resolution error for a link id missing from includes.
func Resolution(op, id string) *Error {
	return &Error{Op: op, Kind: KindResolution, Err: fmt.Errorf("link %q not present in includes", id)}
}

// Upstream wraps a content source or store failure.
func Upstream(op string, err error) *Error {
	return &Error{Op: op, Kind: KindUpstream, Err: err}
}

// Wrap returns err unchanged when it already carries an operation and kind,
// and otherwise tags it as an upstream failure of op.
func Wrap(op string, err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return Upstream(op, err)
}

// KindOf extracts the kind from err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// OpOf extracts the operation name from err.
func OpOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Op
	}
	return ""
}
