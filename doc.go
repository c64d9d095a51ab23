// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package onereq implements a one-shot, promise-style HTTP/HTTPS request
object. A Request represents exactly one outbound request whose
lifetime is governed by an explicit six-state machine: construct with
NewRequest, drive it to completion with Perform, optionally abort it
in flight with Cancel, and observe the result exactly once as either a
*response.HTTPResponse or a typed *onereqerr.Error.

	req, err := onereq.NewRequest("https://example.com/widgets",
		onereq.WithMethod("POST"),
		onereq.WithHeader("Content-Type", "application/json"),
		onereq.WithBodyJSON(map[string]int{"count": 3}),
		onereq.WithTimeout(5000),
	)
	if err != nil {
		// a validation error from the taxonomy in onereqerr
	}
	resp, err := req.Perform()

A Request is created once and driven to a terminal state exactly once;
it cannot be reused. Cancel is cooperative:

	go func() {
		time.Sleep(200 * time.Millisecond)
		req.Cancel()
	}()
	resp, err := req.Perform() // returns HttpRequestCancelled

Perform and Cancel are each idempotent while the Request is in the
matching in-flight state (REQUESTING for Perform, CANCELLING for
Cancel): concurrent callers observe the same result. Calling either
from any other state fails synchronously.
*/
package onereq
