// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"context"
	"runtime"
	"time"

	"github.com/onereq/onereq/onereqerr"
	"github.com/onereq/onereq/response"
	"github.com/onereq/onereq/timeout"
	"github.com/onereq/onereq/transient"
)

// chunkSize bounds how much of the already-encoded body Driver hands
// to WriteChunk at once. The body is encoded up front, so this only
// paces the write loop's interaction with backpressure, not how the
// body is produced.
const chunkSize = 32 * 1024

// An Outcome is the settled result of one Driver.Run call: exactly one
// of Response, Err, or Cancelled (true) is populated.
type Outcome struct {
	Response  *response.HTTPResponse
	Err       *onereqerr.Error
	Cancelled bool
}

// A Driver opens one attempt, streams the request body with
// backpressure, accumulates the response body, drives the timeout
// controller, and negotiates teardown.
//
// A Driver's Run method is called from exactly one goroutine; the
// cancelSignal channel is the only input another goroutine
// (onereq.Request.Cancel) is allowed to push through.
type Driver struct {
	transport Transport
	origin    string
	timeout   time.Duration
	autoJSON  bool
}

// NewDriver returns a Driver that opens attempts through t, enforcing
// dur against origin (a "<scheme>://<host>:<port>" triple) and
// auto-decoding JSON responses per autoJSON.
func NewDriver(t Transport, origin string, dur time.Duration, autoJSON bool) *Driver {
	return &Driver{transport: t, origin: origin, timeout: dur, autoJSON: autoJSON}
}

// Run drives one attempt to a terminal Outcome. ctx bounds the whole
// attempt (typically context.Background(), since the timeout
// controller — not a context deadline — governs the attempt's
// lifetime); cancelSignal, when closed or sent on, requests
// cooperative cancellation.
func (d *Driver) Run(ctx context.Context, req *Request, bodyData []byte, cancelSignal <-chan struct{}) *Outcome {
	conn, err := d.transport.Open(ctx, req)
	if err != nil {
		return &Outcome{Err: transient.Map(err, d.origin)}
	}

	fired := make(chan *onereqerr.Error, 1)
	timeouts := timeout.NewController(d.timeout, d.origin, func(e *onereqerr.Error) {
		select {
		case fired <- e:
		default:
		}
	})

	var (
		offset      int
		writingDone = len(bodyData) == 0
		head        Head
		respBuf     []byte
		cause       *onereqerr.Error
		cancelled   bool
	)

	writeMore := func() {
		for offset < len(bodyData) {
			end := offset + chunkSize
			if end > len(bodyData) {
				end = len(bodyData)
			}
			if !conn.WriteChunk(bodyData[offset:end]) {
				return
			}
			offset = end
			timeouts.RefreshRequest()
		}
		writingDone = true
		conn.CloseWrite()
	}

Loop:
	for {
		select {
		case <-cancelSignal:
			if !cancelled && cause == nil {
				cancelled = true
				conn.Destroy()
			}
			cancelSignal = nil
		case e, ok := <-conn.Events():
			if !ok {
				break Loop
			}
			switch e.Kind {
			case EventConnReady:
				timeouts.ArmRequest()
				if writingDone {
					conn.CloseWrite()
				} else {
					writeMore()
				}
			case EventWritable:
				if !writingDone && cause == nil && !cancelled {
					writeMore()
				}
			case EventRequestFinished:
				timeouts.ClearRequest()
				timeouts.ArmResponse()
			case EventResponseHead:
				head = e.Head
			case EventResponseChunk:
				respBuf = append(respBuf, e.Chunk...)
				timeouts.RefreshResponse()
			case EventResponseEnd:
				timeouts.ClearResponse()
			case EventError:
				if cause == nil && !cancelled {
					cause = transient.Map(e.Err, d.origin)
					conn.Destroy()
				}
			}
		case e := <-fired:
			if cause == nil && !cancelled {
				cause = e
				conn.Destroy()
			}
		}
	}

	conn.Destroy()
	timeouts.Stop()
	runtime.Gosched()

	switch {
	case cancelled:
		return &Outcome{Cancelled: true}
	case cause != nil:
		return &Outcome{Err: cause}
	default:
		resp, aerr := response.Assemble(head.StatusCode, head.StatusMessage, head.Header, respBuf, d.autoJSON)
		if aerr != nil {
			return &Outcome{Err: onereqerr.Wrap(onereqerr.HttpResponseBodyNotParseableAsJson, d.origin, aerr)}
		}
		return &Outcome{Response: resp}
	}
}
