// SPDX-FileCopyrightText: 2019-2026 TideDB authors
//
// SPDX-License-Identifier: Apache-2.0

package scram

import (
	"testing"
)

func TestSASLClient(t *testing.T) {
	client := NewSASLClient(newTestConversation(t))

	mech, ir, err := client.Start()
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if mech != Mechanism {
		t.Fatalf("mechanism %q - expected %q", mech, Mechanism)
	}
	if string(ir) != testFirst {
		t.Fatalf("initial response %q - expected %q", ir, testFirst)
	}

	resp, err := client.Next([]byte(testChallenge))
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if string(resp) != testClientFinal {
		t.Fatalf("response %q - expected %q", resp, testClientFinal)
	}

	resp, err = client.Next([]byte(testServerFinal))
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if len(resp) != 0 {
		t.Fatalf("response %q - expected empty", resp)
	}
}

func TestSASLClientRogueServer(t *testing.T) {
	client := NewSASLClient(newTestConversation(t))

	if _, _, err := client.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := client.Next([]byte(testChallenge)); err != nil {
		t.Fatalf("next: %v", err)
	}
	if _, err := client.Next([]byte("v=AAAAAAAAAAAAAAAAAAAAAAAAAAA=")); err == nil {
		t.Fatal("expected verification failure")
	}
	// terminal: the exchange cannot be resumed
	if _, err := client.Next([]byte(testServerFinal)); err == nil {
		t.Fatal("expected error after failed exchange")
	}
}
