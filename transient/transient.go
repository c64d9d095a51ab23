// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transient

import (
	"errors"
	"net"
	"syscall"

	"github.com/onereq/onereq/onereqerr"
)

// Map converts a transport-layer error into an *onereqerr.Error
// carrying a member of the public Kind taxonomy.
//
// Local errors already produced by the driver (already an
// *onereqerr.Error, for example HttpRequestTimedOut or
// HttpRequestCancelled) pass through unchanged.
//
// Map looks through wrapped causes (via errors.As), not just err
// itself, against a broad set of recognized system error codes, each
// mapped to its own named kind rather than a coarse transience bucket.
func Map(err error, origin string) *onereqerr.Error {
	if err == nil {
		return nil
	}

	var already *onereqerr.Error
	if errors.As(err, &already) {
		return already
	}

	if kind, ok := mapErrno(err); ok {
		return onereqerr.Wrap(kind, origin, err)
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return onereqerr.Wrap(onereqerr.HostnameNotFound, origin, err)
	}

	var timeoutErr hasTimeout
	if errors.As(err, &timeoutErr) && timeoutErr.Timeout() {
		return onereqerr.Wrap(onereqerr.OperationTimedOut, origin, err)
	}

	return onereqerr.Wrap(onereqerr.Unknown, origin, err)
}

// mapErrno maps a recognized POSIX system error code, found anywhere
// in err's wrap chain, onto its taxonomy kind: the common cases
// (ECONNRESET, EPIPE, ECONNREFUSED, EHOSTUNREACH, ENETDOWN, ETIMEDOUT)
// plus the handful of close relatives that show up on real loopback
// and container networking (EHOSTDOWN alongside EHOSTUNREACH,
// ENETUNREACH alongside ENETDOWN).
func mapErrno(err error) (onereqerr.Kind, bool) {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return onereqerr.Unknown, false
	}

	switch errno {
	case syscall.ECONNRESET:
		return onereqerr.NetworkConnectionReset, true
	case syscall.EPIPE:
		return onereqerr.BrokenPipe, true
	case syscall.ECONNREFUSED:
		return onereqerr.ConnectionRefused, true
	case syscall.EHOSTUNREACH, syscall.EHOSTDOWN:
		return onereqerr.HostUnreachable, true
	case syscall.ENETDOWN, syscall.ENETUNREACH:
		return onereqerr.NetworkDown, true
	case syscall.ETIMEDOUT:
		return onereqerr.OperationTimedOut, true
	default:
		return onereqerr.Unknown, false
	}
}

type hasTimeout interface {
	Timeout() bool
}
