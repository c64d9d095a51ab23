// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package timeout implements the countdown timers governing a
// request's lifetime.
//
// A Controller is stateful: it owns at most one armed timer at a
// time, covering either the request phase (connect through request
// body fully written) or the response phase (request fully written
// through response body fully read). The two phases are mutually
// exclusive by construction: a request makes one forward pass with no
// retries to re-arm a timer for.
package timeout
