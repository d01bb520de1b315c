//go:build !go1.24

package scram

import (
	"crypto/sha1"

	"golang.org/x/crypto/pbkdf2"
)

func saltPassword(password string, salt []byte, iterations int) ([]byte, error) {
	return pbkdf2.Key([]byte(password), salt, iterations, sha1.Size, sha1.New), nil
}
