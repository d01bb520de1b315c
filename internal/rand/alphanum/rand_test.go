// SPDX-FileCopyrightText: 2019-2026 TideDB authors
//
// SPDX-License-Identifier: Apache-2.0

package alphanum

import (
	"strings"
	"testing"
)

func TestReadString(t *testing.T) {
	for _, n := range []int{0, 1, 24, 64} {
		s := ReadString(n)
		if len(s) != n {
			t.Fatalf("length %d - expected %d", len(s), n)
		}
		for _, r := range s {
			if !strings.ContainsRune(csAlphanum, r) {
				t.Fatalf("character %q outside alphanumeric set in %q", r, s)
			}
		}
	}
}
