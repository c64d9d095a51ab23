// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package response

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/onereq/onereq/body"
)

// An HTTPResponse is the validated, immutable response value:
// status_code in [100, 599], a status message, a header mapping,
// and an optional body — a []byte when raw, or the decoded value when
// auto-JSON-parsed.
type HTTPResponse struct {
	headers       http.Header
	statusCode    int
	statusMessage string
	body          interface{}
	hasBody       bool
}

// New validates and constructs an HTTPResponse. header may be nil,
// treated as empty. body may be nil (no body), or any value.
func New(header http.Header, statusCode int, statusMessage string, body interface{}) (*HTTPResponse, *Error) {
	if header == nil {
		header = http.Header{}
	}
	if statusCode < 100 || statusCode > 599 {
		return nil, newError(StatusCodeOutOfBounds, "status code %d out of range [100, 599]", statusCode)
	}
	return &HTTPResponse{
		headers:       header,
		statusCode:    statusCode,
		statusMessage: statusMessage,
		body:          body,
		hasBody:       body != nil,
	}, nil
}

// StatusCode returns the response's HTTP status code.
func (r *HTTPResponse) StatusCode() int { return r.statusCode }

// StatusMessage returns the response's reason phrase.
func (r *HTTPResponse) StatusMessage() string { return r.statusMessage }

// Headers returns the response headers.
func (r *HTTPResponse) Headers() http.Header { return r.headers }

// Body returns the response body and whether one is present. The body
// is a []byte for a raw body, or the value produced by JSON decoding
// when auto-JSON-parse applied.
func (r *HTTPResponse) Body() (interface{}, bool) { return r.body, r.hasBody }

// Assemble builds the finished HTTPResponse from the accumulated raw
// byte buffer, running JSON auto-decode when the Content-Type header
// names "application/json" with a charset from the closed encoding
// set and autoJSON is enabled.
func Assemble(statusCode int, statusMessage string, header http.Header, raw []byte, autoJSON bool) (*HTTPResponse, error) {
	if len(raw) == 0 {
		resp, err := New(header, statusCode, statusMessage, nil)
		if err != nil {
			return nil, err
		}
		return resp, nil
	}

	if autoJSON {
		if mediaType, charset, ok := parseContentType(header.Get("Content-Type")); ok && mediaType == "application/json" {
			if enc, ok := body.ParseEncoding(charset); ok {
				decoded, err := body.Decode(raw, enc)
				if err != nil {
					return nil, err
				}
				var v interface{}
				if err := json.Unmarshal(decoded, &v); err != nil {
					return nil, err
				}
				resp, verr := New(header, statusCode, statusMessage, v)
				if verr != nil {
					return nil, verr
				}
				return resp, nil
			}
		}
	}

	resp, err := New(header, statusCode, statusMessage, raw)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// parseContentType is a hand-written scanner for the
// "type/subtype; charset=<token>" grammar, kept deliberately small
// rather than pulling in a process-wide content-type parsing
// dependency. ok is false if v does not contain a media type.
//
// charset defaults to "utf8" when the media type is present but no
// charset parameter is given.
func parseContentType(v string) (mediaType, charset string, ok bool) {
	parts := strings.Split(v, ";")
	mediaType = strings.ToLower(strings.TrimSpace(parts[0]))
	if mediaType == "" || !strings.Contains(mediaType, "/") {
		return "", "", false
	}
	charset = "utf8"
	for _, p := range parts[1:] {
		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(kv[0]))
		if key != "charset" {
			continue
		}
		val := strings.TrimSpace(kv[1])
		val = strings.Trim(val, `"`)
		charset = strings.ToLower(val)
	}
	return mediaType, charset, true
}
