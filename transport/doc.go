// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transport defines the external transport collaborator and
// the driver that consumes it.
//
// Transport is the contract: open a request, stream body chunks with
// backpressure, observe head bytes and body chunks, observe end of
// stream, report errors, and destroy. NewDefault backs that contract
// with net/http's http.Transport plus net/http/httptrace, since
// wire-level HTTP/TLS parsing is out of scope here.
//
// Driver consumes the Event stream one attempt at a time, arms and
// refreshes the two timeout.Controller phases at connection and
// write milestones, and negotiates one-shot teardown.
package transport
