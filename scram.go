// SPDX-FileCopyrightText: 2019-2026 TideDB authors
//
// SPDX-License-Identifier: Apache-2.0

// Package scram implements the client side of the Salted Challenge Response
// Authentication Mechanism with SHA-1 (SCRAM-SHA-1, RFC 5802) as used by the
// TideDB driver to authenticate a connection during setup.
//
// The package performs no network I/O. The caller drives a Conversation
// through its three steps and is responsible for sending and receiving the
// produced and consumed message texts.
package scram

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
)

const (
	// gs2Header is the fixed channel binding prefix of the client first
	// message: no channel binding offered.
	gs2Header = "n,,"

	clientNonceSize = 24
)

// gs2Header repeated as base64 inside the client final message.
var gs2HeaderB64 = base64.StdEncoding.EncodeToString([]byte(gs2Header))

func _sha1(p []byte) []byte {
	hash := sha1.New()
	hash.Write(p)
	return hash.Sum(nil)
}

func _hmac(key, p []byte) []byte {
	hash := hmac.New(sha1.New, key)
	hash.Write(p)
	return hash.Sum(nil)
}

func xor(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, &KeyLengthError{LenA: len(a), LenB: len(b)}
	}
	r := make([]byte, len(a))
	for i, v := range a {
		r[i] = v ^ b[i]
	}
	return r, nil
}
