// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package onereq

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onereq/onereq/internal/fixture"
	"github.com/onereq/onereq/onereqerr"
	"github.com/onereq/onereq/state"
)

// pattern builds a buffer of n bytes filled with the repeating text
// "This is a pattern!", matching the S2/S4 scenario fixtures.
func pattern(n int) []byte {
	const p = "This is a pattern!"
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		buf[i] = p[i%len(p)]
	}
	return buf
}

// S1: silent rejection, no body.
func TestSilentRejectionNoBody(t *testing.T) {
	srv := fixture.Start()
	defer srv.Close()

	req, err := NewRequest(srv.URL + "/silentrejection")
	require.NoError(t, err)

	_, perr := req.Perform()
	require.Error(t, perr)
	assert.Equal(t, onereqerr.NetworkConnectionReset, onereqerr.KindOf(perr))
	assert.Equal(t, state.Failed, req.State())
}

// S2: silent rejection, with a large body.
func TestSilentRejectionWithBody(t *testing.T) {
	srv := fixture.Start()
	defer srv.Close()

	req, err := NewRequest(srv.URL+"/silentrejection",
		WithMethod("POST"),
		WithBodyBytes(pattern(2_000_000)))
	require.NoError(t, err)

	_, perr := req.Perform()
	require.Error(t, perr)
	assert.Equal(t, onereqerr.BrokenPipe, onereqerr.KindOf(perr))
	assert.Equal(t, state.Failed, req.State())
}

// S3: silent timeout, client-side.
func TestSilentTimeoutClientSide(t *testing.T) {
	srv := fixture.Start()
	defer srv.Close()

	req, err := NewRequest(srv.URL+"/silenttimeout", WithTimeout(200))
	require.NoError(t, err)

	_, perr := req.Perform()
	require.Error(t, perr)
	assert.Equal(t, onereqerr.HttpResponseTimedOut, onereqerr.KindOf(perr))
	assert.Equal(t, state.Failed, req.State())
}

// S4: check-pattern echo.
func TestCheckPatternEcho(t *testing.T) {
	srv := fixture.Start()
	defer srv.Close()

	payload := pattern(2_000_000)
	req, err := NewRequest(srv.URL+"/checkpattern",
		WithMethod("POST"),
		WithHeader("Content-Type", "application/octet-stream"),
		WithBodyBytes(payload))
	require.NoError(t, err)

	resp, perr := req.Perform()
	require.NoError(t, perr)
	assert.Equal(t, 200, resp.StatusCode())
	assert.Equal(t, "OK", resp.StatusMessage())
	assert.Equal(t, "application/octet-stream", resp.Headers().Get("Content-Type"))
	assert.Equal(t, "2000000", resp.Headers().Get("Content-Length"))
	body, hasBody := resp.Body()
	require.True(t, hasBody)
	assert.True(t, bytes.Equal(payload, body.([]byte)))
	assert.Equal(t, state.Fulfilled, req.State())
}

// S5: cancellation during a silent wait.
func TestCancellationDuringSilentWait(t *testing.T) {
	srv := fixture.Start()
	defer srv.Close()

	req, err := NewRequest(srv.URL + "/silenttimeout")
	require.NoError(t, err)

	performResult := make(chan struct {
		err error
	}, 1)
	go func() {
		_, perr := req.Perform()
		performResult <- struct{ err error }{perr}
	}()

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, state.Requesting, req.State())

	ok, cerr := req.Cancel()
	require.NoError(t, cerr)
	assert.True(t, ok)

	result := <-performResult
	require.Error(t, result.err)
	assert.Equal(t, onereqerr.HttpRequestCancelled, onereqerr.KindOf(result.err))
	assert.Equal(t, state.Cancelled, req.State())
}

// S6: empty response.
func TestEmptyResponse(t *testing.T) {
	srv := fixture.Start()
	defer srv.Close()

	req, err := NewRequest(srv.URL + "/silentresponse")
	require.NoError(t, err)

	resp, perr := req.Perform()
	require.NoError(t, perr)
	assert.Equal(t, 204, resp.StatusCode())
	assert.Equal(t, "No Content", resp.StatusMessage())
	_, hasBody := resp.Body()
	assert.False(t, hasBody)
	assert.Equal(t, state.Fulfilled, req.State())
}

// S7: non-serializable body.
func TestNonSerializableBody(t *testing.T) {
	srv := fixture.Start()
	defer srv.Close()

	req, err := NewRequest(srv.URL+"/checkpattern",
		WithMethod("POST"),
		WithHeader("Content-Type", "application/json"),
		WithBodyJSON(map[string]interface{}{"x": math.Inf(1)}))
	require.NoError(t, err)

	_, perr := req.Perform()
	require.Error(t, perr)
	assert.Equal(t, onereqerr.HttpRequestBodyObjectNotSerializable, onereqerr.KindOf(perr))
	assert.Equal(t, state.Failed, req.State())
}

func TestPerformIsIdempotentWhileRequesting(t *testing.T) {
	srv := fixture.Start()
	defer srv.Close()

	req, err := NewRequest(srv.URL + "/silentresponse")
	require.NoError(t, err)

	results := make(chan *struct {
		statusCode int
	}, 2)
	for i := 0; i < 2; i++ {
		go func() {
			resp, perr := req.Perform()
			require.NoError(t, perr)
			results <- &struct{ statusCode int }{resp.StatusCode()}
		}()
	}
	first := <-results
	second := <-results
	assert.Equal(t, first.statusCode, second.statusCode)
}

func TestPerformUnavailableAfterTerminal(t *testing.T) {
	srv := fixture.Start()
	defer srv.Close()

	req, err := NewRequest(srv.URL + "/silentresponse")
	require.NoError(t, err)
	_, perr := req.Perform()
	require.NoError(t, perr)

	_, perr = req.Perform()
	require.Error(t, perr)
	assert.Equal(t, onereqerr.MakeRequestUnavailable, onereqerr.KindOf(perr))
}

func TestCancelUnavailableBeforePerform(t *testing.T) {
	srv := fixture.Start()
	defer srv.Close()

	req, err := NewRequest(srv.URL + "/silentresponse")
	require.NoError(t, err)

	_, cerr := req.Cancel()
	require.Error(t, cerr)
	assert.Equal(t, onereqerr.CancelRequestUnavailable, onereqerr.KindOf(cerr))
}
