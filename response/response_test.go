// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package response

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsStatusCodeOutOfBounds(t *testing.T) {
	_, err := New(nil, 99, "", nil)
	require.NotNil(t, err)
	assert.Equal(t, StatusCodeOutOfBounds, err.Kind)

	_, err = New(nil, 600, "", nil)
	require.NotNil(t, err)
	assert.Equal(t, StatusCodeOutOfBounds, err.Kind)
}

func TestNewTreatsNilHeaderAsEmpty(t *testing.T) {
	resp, err := New(nil, 200, "OK", nil)
	require.Nil(t, err)
	assert.NotNil(t, resp.Headers())
	body, hasBody := resp.Body()
	assert.False(t, hasBody)
	assert.Nil(t, body)
}

func TestAssembleEmptyBodyHasNoBody(t *testing.T) {
	resp, err := Assemble(204, "No Content", http.Header{}, nil, true)
	require.NoError(t, err)
	_, hasBody := resp.Body()
	assert.False(t, hasBody)
	assert.Equal(t, 204, resp.StatusCode())
}

func TestAssembleAutoDecodesJSON(t *testing.T) {
	header := http.Header{"Content-Type": {"application/json; charset=utf8"}}
	resp, err := Assemble(200, "OK", header, []byte(`{"count":3}`), true)
	require.NoError(t, err)
	body, hasBody := resp.Body()
	require.True(t, hasBody)
	m, ok := body.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(3), m["count"])
}

func TestAssembleLeavesRawBodyWhenAutoJSONDisabled(t *testing.T) {
	header := http.Header{"Content-Type": {"application/json; charset=utf8"}}
	resp, err := Assemble(200, "OK", header, []byte(`{"count":3}`), false)
	require.NoError(t, err)
	body, hasBody := resp.Body()
	require.True(t, hasBody)
	assert.Equal(t, []byte(`{"count":3}`), body)
}

func TestAssembleLeavesRawBodyForNonJSONContentType(t *testing.T) {
	header := http.Header{"Content-Type": {"application/octet-stream"}}
	resp, err := Assemble(200, "OK", header, []byte("raw bytes"), true)
	require.NoError(t, err)
	body, _ := resp.Body()
	assert.Equal(t, []byte("raw bytes"), body)
}

func TestParseContentTypeDefaultsCharsetToUTF8(t *testing.T) {
	mediaType, charset, ok := parseContentType("application/json")
	require.True(t, ok)
	assert.Equal(t, "application/json", mediaType)
	assert.Equal(t, "utf8", charset)
}

func TestParseContentTypeExtractsCharset(t *testing.T) {
	mediaType, charset, ok := parseContentType(`text/plain; charset="UTF-16LE"`)
	require.True(t, ok)
	assert.Equal(t, "text/plain", mediaType)
	assert.Equal(t, "utf-16le", charset)
}

func TestParseContentTypeRejectsMissingMediaType(t *testing.T) {
	_, _, ok := parseContentType("")
	assert.False(t, ok)

	_, _, ok = parseContentType("charset=utf8")
	assert.False(t, ok)
}
