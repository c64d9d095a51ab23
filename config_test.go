// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package onereq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onereq/onereq/onereqerr"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := newConfig("https://example.com/widgets")
	require.NoError(t, err)
	assert.Equal(t, "GET", cfg.method)
	assert.Equal(t, DefaultTimeoutMs, cfg.timeoutMs)
	assert.True(t, cfg.autoJSON)
	assert.Equal(t, "https://example.com", cfg.origin())
}

func TestNewConfigRejectsBadScheme(t *testing.T) {
	_, err := newConfig("ftp://example.com/file")
	require.Error(t, err)
	assert.Equal(t, onereqerr.UrlProtocolInvalid, onereqerr.KindOf(err))
}

func TestNewConfigRejectsUnparseableURL(t *testing.T) {
	_, err := newConfig("http://%zz")
	require.Error(t, err)
	assert.Equal(t, onereqerr.UrlStringInvalid, onereqerr.KindOf(err))
}

func TestWithMethodUppercasesAndValidates(t *testing.T) {
	cfg, err := newConfig("http://example.com", WithMethod("post"))
	require.NoError(t, err)
	assert.Equal(t, "POST", cfg.method)

	_, err = newConfig("http://example.com", WithMethod("TRACE"))
	require.Error(t, err)
	assert.Equal(t, onereqerr.MethodInvalid, onereqerr.KindOf(err))
}

func TestWithHeaderValidatesFieldName(t *testing.T) {
	cfg, err := newConfig("http://example.com", WithHeader("X-Trace", "abc"))
	require.NoError(t, err)
	assert.Equal(t, "abc", cfg.headers.Get("X-Trace"))

	_, err = newConfig("http://example.com", WithHeader("bad header", "abc"))
	require.Error(t, err)
	assert.Equal(t, onereqerr.HeadersTypeInvalid, onereqerr.KindOf(err))
}

func TestWithHeaderPreservesInsertionOrder(t *testing.T) {
	cfg, err := newConfig("http://example.com",
		WithHeader("X-Trace", "one"),
		WithHeader("X-Trace", "two"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, cfg.headers["X-Trace"])
}

func TestWithTimeoutRejectsNonPositive(t *testing.T) {
	_, err := newConfig("http://example.com", WithTimeout(0))
	require.Error(t, err)
	assert.Equal(t, onereqerr.TimeoutOutOfBounds, onereqerr.KindOf(err))
}

func TestWithBodyTextRejectsUnrecognizedEncoding(t *testing.T) {
	_, err := newConfig("http://example.com", WithBodyText("hi", "utf-32"))
	require.Error(t, err)
	assert.Equal(t, onereqerr.BodyEncodingInvalid, onereqerr.KindOf(err))
}

func TestFirstValidationErrorWins(t *testing.T) {
	_, err := newConfig("http://example.com",
		WithMethod("TRACE"),
		WithTimeout(0))
	require.Error(t, err)
	assert.Equal(t, onereqerr.MethodInvalid, onereqerr.KindOf(err))
}
