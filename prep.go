// SPDX-FileCopyrightText: 2019-2026 TideDB authors
//
// SPDX-License-Identifier: Apache-2.0

package scram

import (
	"golang.org/x/text/secure/precis"
)

// saslPrep prepares a credential for use in the authentication exchange using
// the RFC 8265 OpaqueString profile, the successor of the SASLprep profile
// SCRAM names. Empty strings pass through unchanged since the profile
// rejects them.
func saslPrep(s string) (string, error) {
	if s == "" {
		return s, nil
	}
	return precis.OpaqueString.String(s)
}
