// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package response defines the HTTPResponse value type and the
// assembler that builds one from raw transport output.
//
// HTTPResponse is validated and immutable once constructed: New
// enforces the status code range (header, status message and body are
// not checked) and returns a sibling *Error carrying its own closed
// Kind taxonomy,
// distinct from onereqerr, because these are constructed only by the
// transport driver from data it already trusts, not argument-
// validation failures a caller can trigger — the same
// "driver-internal invariant" class of failure state.Machine guards
// with a panic, except these are worth a typed error because a
// misbehaving Transport implementation could plausibly violate them.
package response
