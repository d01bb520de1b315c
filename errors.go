// SPDX-FileCopyrightText: 2019-2026 TideDB authors
//
// SPDX-License-Identifier: Apache-2.0

package scram

import (
	"errors"
	"fmt"
)

// ErrServerSignature is returned by Verify if the server proof does not match
// the signature computed over the authentication transcript. The server failed
// to prove knowledge of the shared secret and must not be trusted.
var ErrServerSignature = errors.New("scram: invalid server signature")

// A ChallengeError reports a server challenge message missing one of the
// required attributes r, s or i.
type ChallengeError struct {
	Raw string // challenge text as received
}

func (e *ChallengeError) Error() string {
	return fmt.Sprintf("scram: invalid server challenge %q", e.Raw)
}

// A FinalResponseError reports a server final message missing the v attribute.
type FinalResponseError struct {
	Raw string // final message text as received
}

func (e *FinalResponseError) Error() string {
	return fmt.Sprintf("scram: invalid server final message %q", e.Raw)
}

// A NonceError reports a server nonce that does not extend the client nonce.
// It signals a desynchronized or hostile peer; no key material is derived once
// it is detected.
type NonceError struct {
	Nonce string // nonce as returned by the server
}

func (e *NonceError) Error() string {
	return fmt.Sprintf("scram: server nonce %q does not extend the client nonce", e.Nonce)
}

// A KeyLengthError reports mismatching operand sizes in the client proof
// computation. Both operands are SHA-1 digests, so it indicates a broken key
// derivation rather than a protocol condition.
type KeyLengthError struct {
	LenA, LenB int
}

func (e *KeyLengthError) Error() string {
	return fmt.Sprintf("scram: key length mismatch %d - %d", e.LenA, e.LenB)
}

// A StateError reports a conversation step invoked out of order or after the
// conversation already completed or failed.
type StateError struct {
	Op    string
	State State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("scram: %s called in state %s", e.Op, e.State)
}
