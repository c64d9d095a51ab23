// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package onereq

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/onereq/onereq/body"
	"github.com/onereq/onereq/onereqerr"
	"github.com/onereq/onereq/response"
	"github.com/onereq/onereq/state"
	"github.com/onereq/onereq/transport"
)

// A Request is a one-shot, promise-style HTTP/HTTPS client object:
// constructed once with validated parameters, driven to completion by
// Perform, optionally aborted in flight by Cancel, and observed
// exactly once as either a Response value or a typed error.
//
// A Request's internal driver logic runs on exactly one private
// goroutine; Perform,
// Cancel, and State may be called concurrently from any goroutine, but
// mu is only ever held long enough to read or advance the state
// machine and hand off to that goroutine — never across the
// blocking wait for a result.
type Request struct {
	id  uuid.UUID
	cfg *config

	driver *transport.Driver
	logger Logger

	mu      sync.Mutex
	machine *state.Machine

	performDone chan struct{}
	performResp    *response.HTTPResponse
	performErr     error

	cancelSignal chan struct{}
	cancelOnce   sync.Once
	cancelDone   chan struct{}
}

// NewRequest validates rawURL and opts and returns a new Request in
// the CREATED state. It returns a validation error from the taxonomy
// in package onereqerr if any argument is invalid; no instance is
// produced in that case.
func NewRequest(rawURL string, opts ...Option) (*Request, error) {
	cfg, err := newConfig(rawURL, opts...)
	if err != nil {
		return nil, err
	}
	origin := cfg.origin()
	r := &Request{
		id:           uuid.New(),
		cfg:          cfg,
		driver:       transport.NewDriver(transport.NewDefault(), origin, time.Duration(cfg.timeoutMs)*time.Millisecond, cfg.autoJSON),
		logger:       cfg.logger,
		machine:      state.NewMachine(),
		performDone:  make(chan struct{}),
		cancelSignal: make(chan struct{}),
		cancelDone:   make(chan struct{}),
	}
	return r, nil
}

// State returns the Request's current lifecycle state, one of the six
// values state defines.
func (r *Request) State() state.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.machine.Current()
}

// Perform drives the request to completion, taking it from CREATED to
// REQUESTING. A second call while REQUESTING returns the same result
// as the first; a call from any other state fails synchronously with
// MakeRequestUnavailable.
func (r *Request) Perform() (*response.HTTPResponse, error) {
	r.mu.Lock()
	switch r.machine.Current() {
	case state.Created:
		r.machine.Transition(state.Requesting)
		r.mu.Unlock()
		go r.run()
	case state.Requesting:
		r.mu.Unlock()
	default:
		cur := r.machine.Current()
		r.mu.Unlock()
		return nil, onereqerr.Newf(onereqerr.MakeRequestUnavailable, "perform is not available in state %s", cur)
	}
	<-r.performDone
	return r.performResp, r.performErr
}

// Cancel requests cooperative teardown of an in-flight Perform, taking
// it from REQUESTING to CANCELLING. A second call while CANCELLING
// returns the same result as the first; a call from any other state
// fails synchronously with CancelRequestUnavailable.
func (r *Request) Cancel() (bool, error) {
	r.mu.Lock()
	switch r.machine.Current() {
	case state.Requesting:
		r.machine.Transition(state.Cancelling)
		r.mu.Unlock()
		r.cancelOnce.Do(func() { close(r.cancelSignal) })
	case state.Cancelling:
		r.mu.Unlock()
	default:
		cur := r.machine.Current()
		r.mu.Unlock()
		return false, onereqerr.Newf(onereqerr.CancelRequestUnavailable, "cancel is not available in state %s", cur)
	}
	<-r.cancelDone
	return true, nil
}

// run is the Request's private driver goroutine. It encodes the body,
// runs the Transport Driver to a terminal Outcome, and settles state
// plus both result channels exactly once.
func (r *Request) run() {
	origin := r.cfg.origin()

	data, contentLength, err := body.Encode(r.cfg.body)
	if err != nil {
		r.settle(&transport.Outcome{Err: toOnereqErr(err, origin)})
		return
	}

	header := r.cfg.headers.Clone()
	hasBody := r.cfg.body.Kind != body.None
	if hasBody {
		header.Set("Content-Length", strconv.Itoa(contentLength))
	}

	req := &transport.Request{
		Method:        r.cfg.method,
		URL:           r.cfg.url,
		Header:        header,
		HasBody:       hasBody,
		ContentLength: int64(contentLength),
	}

	r.logger.Debugf("request %s: %s %s", r.id, req.Method, req.URL)

	outcome := r.driver.Run(context.Background(), req, data, r.cancelSignal)
	r.settle(outcome)
}

// settle applies outcome to the state machine and releases Perform's
// waiters, plus Cancel's waiters when the outcome is a cancellation:
// FULFILLED iff Response is returned, CANCELLED iff
// HttpRequestCancelled, FAILED otherwise.
//
// Once Cancel has already moved the machine to CANCELLING, that
// verdict is final regardless of what the driver's own outcome says:
// the driver's cancelSignal and event-stream-closed cases race in a
// single select, so a cancellation acknowledged just as the attempt
// was also completing naturally could otherwise arrive here as a
// Fulfilled/Failed outcome while the machine is still in CANCELLING,
// an illegal transition. Checking the machine's own state under the
// same lock Cancel used to enter CANCELLING makes the decision race
// free: Cancel and settle can never disagree about which one moved
// first.
func (r *Request) settle(outcome *transport.Outcome) {
	r.mu.Lock()
	cancelling := r.machine.Current() == state.Cancelling
	switch {
	case cancelling || outcome.Cancelled:
		r.machine.Transition(state.Cancelled)
		r.performErr = onereqerr.New(onereqerr.HttpRequestCancelled, "request was cancelled")
	case outcome.Err != nil:
		r.machine.Transition(state.Failed)
		r.performErr = outcome.Err
	default:
		r.machine.Transition(state.Fulfilled)
		r.performResp = outcome.Response
	}
	r.mu.Unlock()

	if cancelling || outcome.Cancelled {
		r.logger.Debugf("request %s: cancelled", r.id)
		close(r.cancelDone)
	} else if outcome.Err != nil {
		r.logger.Warnf("request %s: failed: %s", r.id, outcome.Err)
	} else {
		r.logger.Debugf("request %s: fulfilled: %d", r.id, outcome.Response.StatusCode())
	}
	close(r.performDone)
}

func toOnereqErr(err error, origin string) *onereqerr.Error {
	if e, ok := err.(*onereqerr.Error); ok {
		return e
	}
	return onereqerr.Wrap(onereqerr.Unknown, origin, err)
}
