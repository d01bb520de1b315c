// SPDX-FileCopyrightText: 2019-2026 TideDB authors
//
// SPDX-License-Identifier: Apache-2.0

package scram

import (
	"testing"
)

func TestSASLPrep(t *testing.T) {
	testData := []struct {
		in, out string
	}{
		{"", ""},
		{"user", "user"},
		{"pencil", "pencil"},
		{"pa\u00a0ss", "pa ss"}, // non-ASCII space maps to ASCII space
	}

	for _, td := range testData {
		got, err := saslPrep(td.in)
		if err != nil {
			t.Fatalf("prepare %q: %v", td.in, err)
		}
		if got != td.out {
			t.Fatalf("prepare %q: got %q - expected %q", td.in, got, td.out)
		}
	}
}

func TestSASLPrepRejectsControls(t *testing.T) {
	if _, err := saslPrep("pa\x00ss"); err == nil {
		t.Fatal("expected preparation error for control character")
	}
	if _, err := NewConversation("us\x00er", "pencil"); err == nil {
		t.Fatal("expected conversation constructor to reject control character")
	}
}

func TestWithoutCredentialPrep(t *testing.T) {
	c, err := NewConversation("us\x00er", "pencil", WithoutCredentialPrep(), WithNonceGenerator(fixedNonce))
	if err != nil {
		t.Fatalf("new conversation: %v", err)
	}
	if c.username != "us\x00er" {
		t.Fatalf("username %q - expected raw bytes preserved", c.username)
	}
}
