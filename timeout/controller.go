// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"fmt"
	"sync"
	"time"

	"github.com/onereq/onereq/onereqerr"
)

// A phase identifies which of the two mutually exclusive timers, if
// any, a Controller currently has armed.
type phase int

const (
	phaseNone phase = iota
	phaseRequest
	phaseResponse
)

// A Controller enforces a single configured timeout duration against
// a Request's lifetime, split into two phases that never overlap:
//
//   - the request phase, from a usable connection being obtained
//     through the request body being fully written to the wire;
//   - the response phase, from the request being fully written
//     through the response body being fully read.
//
// At most one timer is armed at any moment. ArmResponse is expected
// to be called only after ClearRequest, and calling it while the
// request timer is still armed is a programmer error: Controller
// panics rather than silently running two timers, the same way
// state.Machine panics on an illegal transition instead of returning
// an error a caller could ignore.
//
// A Controller is driven from the single goroutine that owns the
// Request, but the fired callback runs on the time.Timer package's
// own goroutine, so the mutex below guards the handful of fields
// shared between the two.
type Controller struct {
	duration time.Duration
	origin   string
	onFire   func(*onereqerr.Error)

	mu    sync.Mutex
	phase phase
	timer *time.Timer
}

// NewController returns a Controller enforcing duration against
// origin (the "<scheme>://<host>:<port>" triple used in the fired
// error). onFire is invoked, on the timer's own
// goroutine, with a *onereqerr.Error of kind HttpRequestTimedOut or
// HttpResponseTimedOut when the armed timer expires before being
// refreshed or cleared.
func NewController(duration time.Duration, origin string, onFire func(*onereqerr.Error)) *Controller {
	return &Controller{duration: duration, origin: origin, onFire: onFire}
}

// ArmRequest starts the request-phase timer. It panics if either
// timer is already armed.
func (c *Controller) ArmRequest() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.arm(phaseRequest)
}

// RefreshRequest restarts the request-phase countdown from its full
// duration, in response to a transport milestone such as a chunk of
// the request body being written. It is a
// no-op if the request-phase timer is not currently armed, which
// happens when the timer fires concurrently with the milestone that
// would have refreshed it; the fire is allowed to win.
func (c *Controller) RefreshRequest() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refresh(phaseRequest)
}

// ClearRequest stops the request-phase timer without firing it. It is
// a no-op if the request-phase timer is not currently armed, which
// happens when the timer fires concurrently with the milestone that
// would have cleared it; the fire is allowed to win.
func (c *Controller) ClearRequest() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clear(phaseRequest)
}

// ArmResponse starts the response-phase timer. It panics if either
// timer is already armed.
func (c *Controller) ArmResponse() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.arm(phaseResponse)
}

// RefreshResponse restarts the response-phase countdown from its
// full duration, in response to a transport milestone such as a
// chunk of the response body arriving. It is a no-op if the
// response-phase timer is not currently armed, which happens when the
// timer fires concurrently with the milestone that would have
// refreshed it; the fire is allowed to win.
func (c *Controller) RefreshResponse() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refresh(phaseResponse)
}

// ClearResponse stops the response-phase timer without firing it. It
// is a no-op if the response-phase timer is not currently armed,
// which happens when the timer fires concurrently with the milestone
// that would have cleared it; the fire is allowed to win.
func (c *Controller) ClearResponse() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clear(phaseResponse)
}

// Stop clears whichever timer is armed, if any, without firing it and
// without panicking if neither is armed. Unlike ClearRequest and
// ClearResponse, which each act only on their own phase, Stop is for
// teardown, which may run from a state where either, or neither,
// timer happens to be armed.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == phaseNone {
		return
	}
	c.timer.Stop()
	c.timer = nil
	c.phase = phaseNone
}

// Armed reports whether either phase currently has a live timer.
func (c *Controller) Armed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase != phaseNone
}

func (c *Controller) arm(p phase) {
	if c.phase != phaseNone {
		panic(fmt.Sprintf("onereq/timeout: cannot arm %s timer while %s timer is armed", p, c.phase))
	}
	c.phase = p
	c.timer = time.AfterFunc(c.duration, func() { c.fire(p) })
}

func (c *Controller) refresh(p phase) {
	if c.phase != p {
		// The timer already fired, under this same lock, between the
		// caller observing the armed phase and this call acquiring it.
		// The fire wins; there is nothing left to refresh.
		return
	}
	if !c.timer.Stop() {
		// The timer already fired and is racing us into fire; let it
		// through rather than double-firing.
		return
	}
	c.timer.Reset(c.duration)
}

func (c *Controller) clear(p phase) {
	if c.phase != p {
		return
	}
	c.timer.Stop()
	c.timer = nil
	c.phase = phaseNone
}

func (c *Controller) fire(p phase) {
	c.mu.Lock()
	if c.phase != p {
		// Already cleared or re-armed by the owning goroutine between
		// the timer firing and this callback acquiring the lock.
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.phase = phaseNone
	c.mu.Unlock()

	kind := onereqerr.HttpRequestTimedOut
	if p == phaseResponse {
		kind = onereqerr.HttpResponseTimedOut
	}
	err := onereqerr.Newf(kind, "timed out after %s", c.duration)
	err.Origin = c.origin
	c.onFire(err)
}

func (p phase) String() string {
	switch p {
	case phaseRequest:
		return "request"
	case phaseResponse:
		return "response"
	default:
		return "none"
	}
}
