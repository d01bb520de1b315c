// SPDX-FileCopyrightText: 2019-2026 TideDB authors
//
// SPDX-License-Identifier: Apache-2.0

// Package trace implements a minimal opt-in tracing facility.
package trace

import (
	"flag"
	"io"
	"log"
	"os"
	"strconv"
)

// A Trace is a logger that discards its output until enabled.
type Trace struct {
	*log.Logger
}

// New returns a Trace writing to io.Discard.
func New(prefix string) *Trace {
	return &Trace{Logger: log.New(io.Discard, prefix+" ", log.Ldate|log.Ltime|log.Lshortfile)}
}

// On reports whether tracing output is enabled.
func (t *Trace) On() bool { return t.Writer() != io.Discard }

// SetOn enables or disables the tracing output.
func (t *Trace) SetOn(on bool) {
	if on {
		t.SetOutput(os.Stdout)
	} else {
		t.SetOutput(io.Discard)
	}
}

// Flag returns a boolean flag.Value toggling the trace, suitable for
// registration via flag.Var.
func (t *Trace) Flag() flag.Value { return (*traceFlag)(t) }

type traceFlag Trace

func (f *traceFlag) String() string {
	// the flag package creates zero values via reflection to determine
	// defaults, so f can be nil here
	if f == nil {
		return strconv.FormatBool(false)
	}
	return strconv.FormatBool((*Trace)(f).On())
}

// IsBoolFlag implements the flag.Value interface.
func (f *traceFlag) IsBoolFlag() bool { return true }

// Set implements the flag.Value interface.
func (f *traceFlag) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	(*Trace)(f).SetOn(b)
	return nil
}
