// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package onereq

import (
	"log"
	"os"
)

// A Logger receives optional diagnostic tracing from a Request's
// driver loop. Perform's result and Cancel's acknowledgement remain
// the only outcomes a caller needs to act on; this exists purely so a
// caller can opt into seeing what the driver is doing.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// NewLogger returns a Logger that writes to os.Stderr through the
// standard library's log package.
func NewLogger() Logger {
	return &stdLogger{l: log.New(os.Stderr, "", log.Ldate|log.Lmicroseconds)}
}

type stdLogger struct {
	l *log.Logger
}

func (s *stdLogger) Debugf(format string, args ...interface{}) { s.output("DEBUG", format, args...) }
func (s *stdLogger) Warnf(format string, args ...interface{})  { s.output("WARN", format, args...) }
func (s *stdLogger) Errorf(format string, args ...interface{}) { s.output("ERROR", format, args...) }

func (s *stdLogger) output(level, format string, args ...interface{}) {
	format = level + " [onereq] " + format
	if len(args) == 0 {
		s.l.Print(format)
		return
	}
	s.l.Printf(format, args...)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{}) {}
func (noopLogger) Warnf(string, ...interface{})  {}
func (noopLogger) Errorf(string, ...interface{}) {}
