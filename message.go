// SPDX-FileCopyrightText: 2019-2026 TideDB authors
//
// SPDX-License-Identifier: Apache-2.0

package scram

import (
	"strconv"
	"strings"
)

// SCRAM messages are comma separated lists of single letter attributes:
// <letter> '=' <value>. Fragments shorter than three characters and attributes
// outside the recognized set are skipped, tolerating protocol extensions; a
// message is rejected only if a required attribute never appears.

// challenge holds the attributes of the server first message.
type challenge struct {
	nonce      string
	salt       string // base64 text
	iterations int
}

func parseChallenge(text string) (*challenge, error) {
	ch := &challenge{}
	var hasNonce, hasSalt, hasIterations bool
	for _, part := range strings.Split(text, ",") {
		if len(part) < 3 {
			continue
		}
		value := part[2:]
		switch part[0] {
		case 'r':
			ch.nonce = value
			hasNonce = true
		case 's':
			ch.salt = value
			hasSalt = true
		case 'i':
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return nil, &ChallengeError{Raw: text}
			}
			ch.iterations = n
			hasIterations = true
		}
	}
	if !hasNonce || !hasSalt || !hasIterations {
		return nil, &ChallengeError{Raw: text}
	}
	return ch, nil
}

// parseFinalResponse extracts the base64 server verifier from the server final
// message.
func parseFinalResponse(text string) (string, error) {
	for _, part := range strings.Split(text, ",") {
		if len(part) < 3 {
			continue
		}
		if part[0] == 'v' {
			return part[2:], nil
		}
	}
	return "", &FinalResponseError{Raw: text}
}

// escapeUsername escapes the attribute separators in a username before it is
// embedded into a protocol message. The '=' substitution runs first so the
// literal '=' introduced by the ',' substitution is not escaped again.
func escapeUsername(username string) string {
	username = strings.ReplaceAll(username, "=", "=3D")
	return strings.ReplaceAll(username, ",", "=2C")
}
