// SPDX-FileCopyrightText: 2019-2026 TideDB authors
//
// SPDX-License-Identifier: Apache-2.0

package scram

import (
	"github.com/tidedb/scram/internal/rand/alphanum"
)

// defaultNonceGenerator produces a random alphanumeric client nonce.
// Alphanumeric characters never collide with the ',' and '=' attribute
// separators, so the nonce embeds into protocol messages unescaped.
func defaultNonceGenerator() string {
	return alphanum.ReadString(clientNonceSize)
}
