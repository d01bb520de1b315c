// SPDX-FileCopyrightText: 2019-2026 TideDB authors
//
// SPDX-License-Identifier: Apache-2.0

package scram

import (
	"encoding/base64"
)

// computeProof builds the authentication message over the exchanged texts and
// returns the client final message together with the server signature the
// server must later present. The transcript binds the escaped username, the
// client nonce, the challenge exactly as received and the channel binding
// header.
func computeProof(keys derivedKeys, username, clientNonce, challengeText, serverNonce string) (string, []byte, error) {
	withoutProof := "c=" + gs2HeaderB64 + ",r=" + serverNonce
	authMessage := "n=" + escapeUsername(username) + ",r=" + clientNonce + "," + challengeText + "," + withoutProof

	clientSignature := _hmac(keys.storedKey(), []byte(authMessage))
	clientProof, err := xor(keys.clientKey, clientSignature)
	if err != nil {
		return "", nil, err
	}
	serverSignature := _hmac(keys.serverKey, []byte(authMessage))

	final := withoutProof + ",p=" + base64.StdEncoding.EncodeToString(clientProof)
	return final, serverSignature, nil
}
