// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package body turns a configured request body — a byte buffer, text
// under a named encoding, or an arbitrary structured value destined
// for JSON — into the exact bytes written to the wire, plus the
// Content-Length they imply.
//
// Text encodings are resolved through golang.org/x/text/encoding
// rather than a hand-rolled table of byte-swapping loops.
package body
