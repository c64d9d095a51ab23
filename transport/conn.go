// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptrace"
	"sync"
)

// NewDefault returns a Transport backed by net/http's http.Transport,
// with keep-alives disabled so no two attempts, whether from the same
// or different Request instances, ever share a connection.
//
// Milestones are traced with net/http/httptrace.ClientTrace, since
// wire-level connection and TLS handling is an external collaborator's
// concern.
func NewDefault() Transport {
	return &httpTransport{
		client: &http.Client{
			Transport: &http.Transport{
				DisableKeepAlives: true,
			},
		},
	}
}

type httpTransport struct {
	client *http.Client
}

func (t *httpTransport) Open(ctx context.Context, req *Request) (Conn, error) {
	ctx, cancel := context.WithCancel(ctx)
	c := &httpConn{
		events:  make(chan Event, 16),
		stopped: make(chan struct{}),
		cancel:  cancel,
	}
	c.reader = newChunkedReader(func() { c.emit(Event{Kind: EventWritable}) }, c.stopped)

	trace := &httptrace.ClientTrace{
		GotConn: func(httptrace.GotConnInfo) {
			c.emit(Event{Kind: EventConnReady})
		},
		WroteRequest: func(info httptrace.WroteRequestInfo) {
			if info.Err != nil {
				c.emit(Event{Kind: EventError, Err: info.Err})
				return
			}
			c.emit(Event{Kind: EventRequestFinished})
		},
	}
	ctx = httptrace.WithClientTrace(ctx, trace)

	var bodyReader io.Reader
	if req.HasBody {
		bodyReader = c.reader
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL.String(), bodyReader)
	if err != nil {
		cancel()
		return nil, err
	}
	httpReq.Header = req.Header
	httpReq.ContentLength = req.ContentLength

	go c.run(t.client, httpReq)

	return c, nil
}

// httpConn is the net/http-backed Conn implementation. One httpConn
// serves exactly one attempt; it is never reused.
type httpConn struct {
	events  chan Event
	stopped chan struct{}
	cancel  context.CancelFunc
	reader  *chunkedReader

	destroyOnce sync.Once
}

func (c *httpConn) Events() <-chan Event {
	return c.events
}

func (c *httpConn) WriteChunk(p []byte) bool {
	return c.reader.write(p)
}

func (c *httpConn) CloseWrite() {
	c.reader.closeWriteHalf()
}

func (c *httpConn) Destroy() {
	c.destroyOnce.Do(func() {
		close(c.stopped)
		c.cancel()
		c.reader.destroy()
	})
}

func (c *httpConn) emit(e Event) {
	select {
	case c.events <- e:
	case <-c.stopped:
	}
}

// run drives one HTTP attempt to completion: it performs the request,
// then streams the response body as EventResponseChunk events. It owns
// c.events and is the only goroutine that closes it.
func (c *httpConn) run(client *http.Client, req *http.Request) {
	defer close(c.events)

	resp, err := client.Do(req)
	if err != nil {
		c.emit(Event{Kind: EventError, Err: err})
		return
	}
	defer func() { _ = resp.Body.Close() }()

	c.emit(Event{Kind: EventResponseHead, Head: Head{
		StatusCode:    resp.StatusCode,
		StatusMessage: statusMessage(resp),
		Header:        resp.Header,
	}})

	buf := make([]byte, 32*1024)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			c.emit(Event{Kind: EventResponseChunk, Chunk: chunk})
		}
		if readErr == io.EOF {
			c.emit(Event{Kind: EventResponseEnd})
			return
		}
		if readErr != nil {
			c.emit(Event{Kind: EventError, Err: readErr})
			return
		}
	}
}

// statusMessage extracts the reason phrase from the response's status
// line, since http.Response.Status is "<code> <reason>".
func statusMessage(resp *http.Response) string {
	status := resp.Status
	for i := 0; i < len(status); i++ {
		if status[i] == ' ' {
			return status[i+1:]
		}
	}
	return http.StatusText(resp.StatusCode)
}
