// SPDX-FileCopyrightText: 2019-2026 TideDB authors
//
// SPDX-License-Identifier: Apache-2.0

// Package alphanum implements functions for randomized alphanumeric content.
package alphanum

import (
	"crypto/rand"
)

const csAlphanum = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz" // alphanumeric character set.
var numAlphanum = byte(len(csAlphanum))                                             // len character set <= max(byte)

// Read fills p with random alphanumeric characters. It always fills p
// entirely and never returns an error.
func Read(p []byte) (n int, err error) {
	// does not return an error starting with go1.24
	rand.Read(p) //nolint: errcheck
	for i, b := range p {
		p[i] = csAlphanum[b%numAlphanum]
	}
	return len(p), nil
}

// ReadString returns a random string of n alphanumeric characters.
func ReadString(n int) string {
	b := make([]byte, n)
	Read(b) //nolint: errcheck
	return string(b)
}
