// SPDX-FileCopyrightText: 2019-2026 TideDB authors
//
// SPDX-License-Identifier: Apache-2.0

package scram

import (
	"crypto/hmac"
	"encoding/base64"
	"fmt"
)

// State represents the progress of a Conversation.
type State int

// Conversation states.
const (
	StateStart State = iota
	StateFirstSent
	StateFinalSent
	StateVerified
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateFirstSent:
		return "first message sent"
	case StateFinalSent:
		return "final message sent"
	case StateVerified:
		return "verified"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// A NonceGenerator returns high quality random printable ASCII excluding the
// comma character, at least clientNonceSize characters long.
type NonceGenerator func() string

// An Option configures a Conversation.
type Option func(*convConfig)

type convConfig struct {
	nonceGen NonceGenerator
	prep     bool
}

// WithNonceGenerator replaces the crypto/rand backed default nonce source.
func WithNonceGenerator(gen NonceGenerator) Option {
	return func(cfg *convConfig) { cfg.nonceGen = gen }
}

// WithoutCredentialPrep disables the RFC 8265 preparation of username and
// password, passing both through byte for byte.
func WithoutCredentialPrep() Option {
	return func(cfg *convConfig) { cfg.prep = false }
}

// A Conversation is the client side of one SCRAM-SHA-1 authentication
// exchange. It serves exactly one login attempt for exactly one caller;
// concurrent use needs external synchronization. Retrying after a failure
// requires a fresh Conversation and with it a fresh nonce.
type Conversation struct {
	username string
	password string
	nonce    string
	state    State

	// key material of the last derivation, reused while the server
	// presents the same salt and iteration count
	factors  keyFactors
	keys     derivedKeys
	haveKeys bool

	serverSignature []byte
}

// NewConversation creates a Conversation for the given credentials. Username
// and password are prepared per RFC 8265 OpaqueString unless disabled via
// WithoutCredentialPrep.
func NewConversation(username, password string, opts ...Option) (*Conversation, error) {
	cfg := convConfig{nonceGen: defaultNonceGenerator, prep: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.prep {
		var err error
		if username, err = saslPrep(username); err != nil {
			return nil, fmt.Errorf("scram: prepare username: %w", err)
		}
		if password, err = saslPrep(password); err != nil {
			return nil, fmt.Errorf("scram: prepare password: %w", err)
		}
	}
	return &Conversation{username: username, password: password, nonce: cfg.nonceGen()}, nil
}

// State returns the current conversation state.
func (c *Conversation) State() State { return c.state }

// Done reports whether the conversation reached a terminal state.
func (c *Conversation) Done() bool { return c.state == StateVerified || c.state == StateFailed }

// Valid reports whether the conversation completed with a verified server.
func (c *Conversation) Valid() bool { return c.state == StateVerified }

// ServerSignature returns the signature the server must present in its final
// message. It is available once ProcessChallenge succeeded.
func (c *Conversation) ServerSignature() []byte {
	return append([]byte(nil), c.serverSignature...)
}

// fail moves the conversation to its terminal failure state. No further steps
// are valid afterwards.
func (c *Conversation) fail(err error) error {
	c.state = StateFailed
	tracef("conversation failed: %v", err)
	return err
}

// FirstMessage produces the client first message
// "n,,n=<escaped-username>,r=<client-nonce>".
func (c *Conversation) FirstMessage() (string, error) {
	if c.state != StateStart {
		return "", c.fail(&StateError{Op: "FirstMessage", State: c.state})
	}
	c.state = StateFirstSent
	return gs2Header + c.firstMessageBare(), nil
}

func (c *Conversation) firstMessageBare() string {
	return "n=" + escapeUsername(c.username) + ",r=" + c.nonce
}

// ProcessChallenge consumes the server challenge and produces the client
// final message carrying the proof. The server nonce must extend the client
// nonce; the check runs before any key derivation so no proof is ever bound
// to a nonce the client never issued.
func (c *Conversation) ProcessChallenge(challengeText string) (string, error) {
	if c.state != StateFirstSent {
		return "", c.fail(&StateError{Op: "ProcessChallenge", State: c.state})
	}
	ch, err := parseChallenge(challengeText)
	if err != nil {
		return "", c.fail(err)
	}
	if len(ch.nonce) < len(c.nonce) || ch.nonce[:len(c.nonce)] != c.nonce {
		return "", c.fail(&NonceError{Nonce: ch.nonce})
	}
	salt, err := base64.StdEncoding.DecodeString(ch.salt)
	if err != nil {
		return "", c.fail(fmt.Errorf("scram: decode salt: %w", err))
	}
	keys, err := c.derivedKeys(ch.salt, salt, ch.iterations)
	if err != nil {
		return "", c.fail(err)
	}
	final, serverSignature, err := computeProof(keys, c.username, c.nonce, challengeText, ch.nonce)
	if err != nil {
		return "", c.fail(err)
	}
	c.serverSignature = serverSignature
	c.state = StateFinalSent
	tracef("challenge processed, %d iterations", ch.iterations)
	return final, nil
}

// derivedKeys returns the cached key material while salt and iteration count
// are unchanged and derives it otherwise.
func (c *Conversation) derivedKeys(saltB64 string, salt []byte, iterations int) (derivedKeys, error) {
	factors := keyFactors{salt: saltB64, iterations: iterations}
	if c.haveKeys && c.factors == factors {
		return c.keys, nil
	}
	keys, err := deriveKeys(c.password, salt, iterations)
	if err != nil {
		return derivedKeys{}, err
	}
	c.factors, c.keys, c.haveKeys = factors, keys, true
	return keys, nil
}

// Verify checks the server final message against the expected server
// signature, proving the server knows the shared secret. On success it
// returns the empty continuation text some transports send to formally close
// the exchange.
func (c *Conversation) Verify(finalText string) (string, error) {
	if c.state != StateFinalSent {
		return "", c.fail(&StateError{Op: "Verify", State: c.state})
	}
	verifier, err := parseFinalResponse(finalText)
	if err != nil {
		return "", c.fail(err)
	}
	signature, err := base64.StdEncoding.DecodeString(verifier)
	if err != nil {
		return "", c.fail(fmt.Errorf("scram: decode server signature: %w", err))
	}
	if !hmac.Equal(signature, c.serverSignature) {
		return "", c.fail(ErrServerSignature)
	}
	c.state = StateVerified
	tracef("server verified")
	return "", nil
}
