// SPDX-FileCopyrightText: 2019-2026 TideDB authors
//
// SPDX-License-Identifier: Apache-2.0

package scram

import (
	"github.com/emersion/go-sasl"
)

// Mechanism is the SASL mechanism name of this exchange.
const Mechanism = "SCRAM-SHA-1"

// NewSASLClient adapts a Conversation to the go-sasl client interface, for
// handshake orchestrators that drive authentication generically. The adapter
// owns the conversation from the first message on; the caller must not step
// it concurrently.
func NewSASLClient(conv *Conversation) sasl.Client {
	return &saslClient{conv: conv}
}

type saslClient struct {
	conv *Conversation
}

func (c *saslClient) Start() (string, []byte, error) {
	first, err := c.conv.FirstMessage()
	if err != nil {
		return "", nil, err
	}
	return Mechanism, []byte(first), nil
}

func (c *saslClient) Next(challenge []byte) ([]byte, error) {
	switch c.conv.State() {
	case StateFirstSent:
		resp, err := c.conv.ProcessChallenge(string(challenge))
		if err != nil {
			return nil, err
		}
		return []byte(resp), nil
	case StateFinalSent:
		resp, err := c.conv.Verify(string(challenge))
		if err != nil {
			return nil, err
		}
		return []byte(resp), nil
	default:
		return nil, &StateError{Op: "Next", State: c.conv.State()}
	}
}
