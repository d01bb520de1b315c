//go:build go1.24

package scram

import (
	"crypto/pbkdf2"
	"crypto/sha1"
)

func saltPassword(password string, salt []byte, iterations int) ([]byte, error) {
	return pbkdf2.Key(sha1.New, password, salt, iterations, sha1.Size)
}
