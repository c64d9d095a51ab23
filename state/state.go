// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package state defines the six-state lifecycle of a one-shot request
// instance and the legal transitions between those states.
//
// A State is advanced by the owning request's Perform, Cancel and
// driver goroutine, which serialize their access themselves; external
// callers only ever read it through an accessor. See package
// onereq for the public-facing Request type that owns a Machine.
package state

import "fmt"

// A State identifies one of the six stages in a request instance's
// lifecycle.
type State int

const (
	// Created is the initial state of every instance. Perform moves it
	// to Requesting.
	Created State = iota
	// Requesting indicates Perform is driving the request to
	// completion. Cancel moves it to Cancelling; a successful or
	// failed attempt moves it to Fulfilled or Failed respectively.
	Requesting
	// Cancelling indicates Cancel has been invoked while Requesting
	// and the driver is tearing the transport down. The transport's
	// acknowledgement moves it to Cancelled.
	Cancelling
	// Fulfilled is a terminal state: the request completed
	// successfully and a Response is available.
	Fulfilled
	// Cancelled is a terminal state: the request was torn down in
	// response to Cancel and the cancel-future has resolved true.
	Cancelled
	// Failed is a terminal state: the request ended in an error other
	// than cancellation.
	Failed

	stateSentinel
)

var stateNames = [...]string{
	"CREATED",
	"REQUESTING",
	"CANCELLING",
	"FULFILLED",
	"CANCELLED",
	"FAILED",
}

// String returns the upper-case name of the state.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Terminal reports whether s is one of the three terminal states
// (Fulfilled, Cancelled, Failed) that accept no further transitions.
func (s State) Terminal() bool {
	return s == Fulfilled || s == Cancelled || s == Failed
}

// legal enumerates every (from, to) pair the lifecycle allows. It
// intentionally omits a general "anything can fail" rule;
// every caller of Machine.Transition must name the specific edge it is
// taking.
var legal = map[State]map[State]bool{
	Created:    {Requesting: true},
	Requesting: {Fulfilled: true, Failed: true, Cancelling: true},
	Cancelling: {Cancelled: true},
}

// A Machine tracks the current State of one request instance and
// rejects illegal transitions.
//
// Machine is not safe for concurrent use: Request advances it from
// both its callers' goroutines (Perform, Cancel) and its driver
// goroutine, and guards every Transition and Current call with its
// own mutex rather than relying on Machine for that.
type Machine struct {
	current State
}

// NewMachine returns a Machine starting in the Created state.
func NewMachine() *Machine {
	return &Machine{current: Created}
}

// Current returns the machine's current state.
func (m *Machine) Current() State {
	return m.current
}

// Transition advances the machine from its current state to to. It
// panics if the transition is not legal: an illegal transition
// indicates a bug in the driver, not a condition a caller
// can trigger (callers are turned away earlier, at Perform/Cancel, by
// MakeRequestUnavailable/CancelRequestUnavailable checks that consult
// Current themselves before ever calling Transition).
func (m *Machine) Transition(to State) {
	allowed := legal[m.current]
	if !allowed[to] {
		panic(fmt.Sprintf("onereq/state: illegal transition %s -> %s", m.current, to))
	}
	m.current = to
}

// CanTransition reports whether advancing from the machine's current
// state to to is legal, without performing the transition.
func (m *Machine) CanTransition(to State) bool {
	return legal[m.current][to]
}
