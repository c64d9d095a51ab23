// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package onereqerr defines the closed taxonomy of error kinds a
// Request can surface, and the Error type that carries one of them.
//
// Every error onereq.Request returns, whether synchronously from
// construction or from a settled Perform, is an *Error with a Kind
// from this package. Package transient is responsible for mapping
// transport-level system errors onto this taxonomy; everything else
// (validation, state-violation, and runtime kinds) is produced
// directly by the package that detects the condition.
package onereqerr
