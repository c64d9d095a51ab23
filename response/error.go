// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package response

import "fmt"

// A Kind identifies one member of the closed set of HTTPResponse
// construction failures.
type Kind int

const (
	HeadersTypeInvalid Kind = iota
	StatusCodeTypeInvalid
	StatusCodeOutOfBounds
	StatusMessageTypeInvalid
	BodyTypeInvalid
)

var kindNames = [...]string{
	"HeadersTypeInvalid",
	"StatusCodeTypeInvalid",
	"StatusCodeOutOfBounds",
	"StatusMessageTypeInvalid",
	"BodyTypeInvalid",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// An Error reports that a Transport implementation handed the driver
// data that cannot be assembled into a valid HTTPResponse.
type Error struct {
	Kind    Kind
	Message string
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("onereq/response: %s: %s", e.Kind, e.Message)
}
