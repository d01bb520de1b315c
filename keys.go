// SPDX-FileCopyrightText: 2019-2026 TideDB authors
//
// SPDX-License-Identifier: Apache-2.0

package scram

// keyFactors identifies one key derivation. The salt is kept in its base64
// text form so factors are comparable.
type keyFactors struct {
	salt       string
	iterations int
}

// derivedKeys is the expensive part of one derivation. The stored key is a
// cheap hash of the client key and is recomputed on demand instead.
type derivedKeys struct {
	saltedPassword []byte
	clientKey      []byte
	serverKey      []byte
}

func (k derivedKeys) storedKey() []byte { return _sha1(k.clientKey) }

// deriveKeys stretches the password with PBKDF2-HMAC-SHA1 and derives the
// client and server keys. Iteration counts of real servers are in the
// thousands, making this the dominant cost of an authentication.
func deriveKeys(password string, salt []byte, iterations int) (derivedKeys, error) {
	saltedPassword, err := saltPassword(password, salt, iterations)
	if err != nil {
		return derivedKeys{}, err
	}
	return derivedKeys{
		saltedPassword: saltedPassword,
		clientKey:      _hmac(saltedPassword, []byte("Client Key")),
		serverKey:      _hmac(saltedPassword, []byte("Server Key")),
	}, nil
}
