// SPDX-FileCopyrightText: 2019-2026 TideDB authors
//
// SPDX-License-Identifier: Apache-2.0

package scram

import (
	"flag"
	"fmt"

	"github.com/tidedb/scram/internal/trace"
)

var stdTrace = trace.New("tide auth")

func init() {
	flag.Var(stdTrace.Flag(), "tide.protocol.auth", "enabling tide authentication trace")
}

// tracef writes to the authentication trace if enabled. Credentials and key
// material are never traced, only protocol level progress.
func tracef(format string, v ...any) {
	if stdTrace.On() {
		stdTrace.Output(2, fmt.Sprintf(format, v...))
	}
}
