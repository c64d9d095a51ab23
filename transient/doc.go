// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transient classifies transport-layer failures (syscall error codes, DNS
// lookup failures, generic timeouts) onto the public error taxonomy
// in package onereqerr.
//
// Package transient is extremely lightweight, as it depends only on
// the standard library packages "errors", "net", and "syscall" plus
// onereqerr, so it doesn't bring any significant dependencies when
// imported as a standalone package.
package transient
