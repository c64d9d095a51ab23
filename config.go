// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package onereq

import (
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/onereq/onereq/body"
	"github.com/onereq/onereq/onereqerr"
)

// DefaultTimeoutMs is the timeout, in milliseconds, used when no
// WithTimeout option is given.
const DefaultTimeoutMs = 60000

// methods is the closed set of recognized HTTP methods. The set
// includes HEAD; see DESIGN.md for why.
var methods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
	http.MethodPatch:  true,
	http.MethodHead:   true,
}

// A config is the immutable, validated configuration for a Request.
// It is built once by NewRequest and never mutated afterward; Request
// copies out of it but never writes back into it.
type config struct {
	url       *url.URL
	method    string
	headers   http.Header
	timeoutMs int
	body      body.Config
	autoJSON  bool
	logger    Logger
}

// An Option configures a Request under construction, following the
// functional-options idiom, returning an error so validation failures
// surface synchronously.
type Option func(*config) error

// WithMethod sets the request method. Only the closed set (GET, POST,
// PUT, DELETE, PATCH, HEAD) is accepted; anything else fails with
// MethodInvalid.
func WithMethod(method string) Option {
	return func(c *config) error {
		upper := strings.ToUpper(method)
		if !methods[upper] {
			return onereqerr.Newf(onereqerr.MethodInvalid, "unrecognized method %q", method)
		}
		c.method = upper
		return nil
	}
}

// WithHeader adds one header, appended in call order so headers stay
// reproducible and insertion order is preserved. Header names are
// validated as RFC 7230 tokens; an invalid name fails with
// HeadersTypeInvalid.
func WithHeader(name, value string) Option {
	return func(c *config) error {
		if !httpguts.ValidHeaderFieldName(name) {
			return onereqerr.Newf(onereqerr.HeadersTypeInvalid, "invalid header field name %q", name)
		}
		c.headers.Add(name, value)
		return nil
	}
}

// WithHeaders adds every name/value pair in h, in h's iteration order.
// See WithHeader for validation rules.
func WithHeaders(h http.Header) Option {
	return func(c *config) error {
		for name, values := range h {
			for _, v := range values {
				if !httpguts.ValidHeaderFieldName(name) {
					return onereqerr.Newf(onereqerr.HeadersTypeInvalid, "invalid header field name %q", name)
				}
				c.headers.Add(name, v)
			}
		}
		return nil
	}
}

// WithTimeout sets the single timeout, in milliseconds, applied to
// both the request and response phases. It must be at least 1;
// anything else fails with TimeoutOutOfBounds.
func WithTimeout(ms int) Option {
	return func(c *config) error {
		if ms < 1 {
			return onereqerr.Newf(onereqerr.TimeoutOutOfBounds, "timeout %d ms is not >= 1", ms)
		}
		c.timeoutMs = ms
		return nil
	}
}

// WithBodyBytes sets the request body to the literal wire payload b.
func WithBodyBytes(b []byte) Option {
	return func(c *config) error {
		c.body = body.Config{Kind: body.Bytes, Bytes: b}
		return nil
	}
}

// WithBodyText sets the request body to text, to be decoded under the
// named encoding (one of body's closed set) at encode time. An
// unrecognized encoding fails with BodyEncodingInvalid.
func WithBodyText(text, encoding string) Option {
	return func(c *config) error {
		enc, ok := body.ParseEncoding(encoding)
		if !ok {
			return onereqerr.Newf(onereqerr.BodyEncodingInvalid, "unrecognized body encoding %q", encoding)
		}
		c.body = body.Config{Kind: body.Text, Text: text, Encoding: enc}
		return nil
	}
}

// WithBodyJSON sets the request body to v, serialized as JSON at
// encode time. A value that cannot be serialized (self-cycles,
// non-serializable leaves) fails Perform with
// HttpRequestBodyObjectNotSerializable — not at construction, since
// serializability can only be established by attempting to
// serialize.
func WithBodyJSON(v interface{}) Option {
	return func(c *config) error {
		c.body = body.Config{Kind: body.Structured, Value: v}
		return nil
	}
}

// WithAutoJSONResponseParse overrides the default (true) for whether
// a JSON response body is auto-decoded.
func WithAutoJSONResponseParse(enabled bool) Option {
	return func(c *config) error {
		c.autoJSON = enabled
		return nil
	}
}

// WithLogger attaches an optional diagnostic Logger to the Request.
// It exists purely for off-by-default tracing.
func WithLogger(l Logger) Option {
	return func(c *config) error {
		c.logger = l
		return nil
	}
}

// newConfig parses rawURL and applies opts in order, returning the
// first validation error encountered so construction fails
// synchronously.
func newConfig(rawURL string, opts ...Option) (*config, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, onereqerr.Wrap(onereqerr.UrlStringInvalid, "", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, onereqerr.Newf(onereqerr.UrlProtocolInvalid, "scheme %q is not http or https", u.Scheme)
	}

	c := &config{
		url:       u,
		method:    http.MethodGet,
		headers:   http.Header{},
		timeoutMs: DefaultTimeoutMs,
		body:      body.Config{Kind: body.None},
		autoJSON:  true,
		logger:    noopLogger{},
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// origin is the "<scheme>://<host>:<port>" triple, used to tag error
// messages.
func (c *config) origin() string {
	return c.url.Scheme + "://" + c.url.Host
}
