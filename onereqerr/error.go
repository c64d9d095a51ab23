// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package onereqerr

import "fmt"

// An Error is the concrete error type returned for every failure in
// the onereq taxonomy, from construction-time validation through a
// settled Perform.
//
// Error always wraps a concrete Kind alongside its optional cause, so
// callers can switch on a closed taxonomy rather than string-match an
// opaque message.
type Error struct {
	// Kind identifies which member of the taxonomy this error is.
	Kind Kind
	// Origin is the "<scheme>://<host>:<port>" triple of the request
	// URL. It is empty for validation errors raised before a URL was
	// successfully parsed.
	Origin string
	// Message is a human-readable description of the failure.
	Message string
	// Cause is the underlying error, if any, that led to this Error.
	Cause error
}

// New constructs an *Error with no origin and no cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf constructs an *Error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap constructs an *Error that carries cause as its Cause.
func Wrap(kind Kind, origin string, cause error) *Error {
	msg := kind.String()
	if cause != nil {
		msg = fmt.Sprintf("%s: %s", kind.String(), cause.Error())
	}
	return &Error{Kind: kind, Origin: origin, Message: msg, Cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Origin == "" {
		return fmt.Sprintf("onereq: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("onereq: %s %s: %s", e.Kind, e.Origin, e.Message)
}

// Unwrap allows errors.Is/errors.As to see through to Cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Timeout reports whether e represents a timeout, satisfying the
// ad hoc `interface{ Timeout() bool }` convention used throughout
// net and net/http (and consulted by transient.Map's own callers).
func (e *Error) Timeout() bool {
	return e.Kind.Timeout()
}

// Is reports whether err is an *Error of the given kind, e.g.
// onereqerr.Is(err, onereqerr.HttpRequestCancelled). The more
// idiomatic spelling is KindOf(err) == kind; Is exists for callers
// who prefer a boolean predicate.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// KindOf extracts the Kind from err if it is (or wraps) an *Error,
// and returns Unknown otherwise.
func KindOf(err error) Kind {
	var e *Error
	for err != nil {
		if as, ok := err.(*Error); ok {
			e = as
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	if e == nil {
		return Unknown
	}
	return e.Kind
}
