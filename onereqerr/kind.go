// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package onereqerr

// A Kind identifies one member of the closed error taxonomy.
type Kind int

const (
	// Unknown is the terminal catch-all: a transport error whose
	// system error code, if any, is not recognized.
	Unknown Kind = iota

	// Validation kinds, raised synchronously at construction.

	UrlTypeInvalid
	UrlStringInvalid
	UrlProtocolInvalid
	MethodTypeInvalid
	MethodInvalid
	HeadersTypeInvalid
	TimeoutTypeInvalid
	TimeoutOutOfBounds
	BodyTypeInvalid
	BodyEncodingTypeInvalid
	BodyEncodingInvalid
	AutoJsonResponseParseOptionTypeInvalid

	// State-violation kinds, raised synchronously from Perform/Cancel.

	MakeRequestUnavailable
	CancelRequestUnavailable

	// Runtime kinds, settling the perform-future.

	HttpRequestTimedOut
	HttpResponseTimedOut
	HttpRequestCancelled
	HttpResponseBodyNotParseableAsJson
	HttpRequestBodyObjectNotSerializable

	// Transport-mapped kinds, one per recognized system error code.

	NetworkConnectionReset
	BrokenPipe
	ConnectionRefused
	HostUnreachable
	NetworkDown
	HostnameNotFound
	OperationTimedOut
)

var kindNames = map[Kind]string{
	Unknown:                                "Unknown",
	UrlTypeInvalid:                         "UrlTypeInvalid",
	UrlStringInvalid:                       "UrlStringInvalid",
	UrlProtocolInvalid:                     "UrlProtocolInvalid",
	MethodTypeInvalid:                      "MethodTypeInvalid",
	MethodInvalid:                          "MethodInvalid",
	HeadersTypeInvalid:                     "HeadersTypeInvalid",
	TimeoutTypeInvalid:                     "TimeoutTypeInvalid",
	TimeoutOutOfBounds:                     "TimeoutOutOfBounds",
	BodyTypeInvalid:                        "BodyTypeInvalid",
	BodyEncodingTypeInvalid:                "BodyEncodingTypeInvalid",
	BodyEncodingInvalid:                    "BodyEncodingInvalid",
	AutoJsonResponseParseOptionTypeInvalid: "AutoJsonResponseParseOptionTypeInvalid",
	MakeRequestUnavailable:                 "MakeRequestUnavailable",
	CancelRequestUnavailable:               "CancelRequestUnavailable",
	HttpRequestTimedOut:                    "HttpRequestTimedOut",
	HttpResponseTimedOut:                   "HttpResponseTimedOut",
	HttpRequestCancelled:                   "HttpRequestCancelled",
	HttpResponseBodyNotParseableAsJson:      "HttpResponseBodyNotParseableAsJson",
	HttpRequestBodyObjectNotSerializable:    "HttpRequestBodyObjectNotSerializable",
	NetworkConnectionReset:                 "NetworkConnectionReset",
	BrokenPipe:                             "BrokenPipe",
	ConnectionRefused:                      "ConnectionRefused",
	HostUnreachable:                        "HostUnreachable",
	NetworkDown:                            "NetworkDown",
	HostnameNotFound:                       "HostnameNotFound",
	OperationTimedOut:                      "OperationTimedOut",
}

// String returns the kind's name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Timeout reports whether k represents a timeout of any kind
// (request-phase, response-phase, or a mapped ETIMEDOUT).
func (k Kind) Timeout() bool {
	switch k {
	case HttpRequestTimedOut, HttpResponseTimedOut, OperationTimedOut:
		return true
	default:
		return false
	}
}
