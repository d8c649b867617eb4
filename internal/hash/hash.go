// Package hash applies a password-hashing scheme to generated or
// user-supplied passwords. It uses Argon2id with the library default
// parameters.
package hash

import (
	"github.com/alexedwards/argon2id"
	"github.com/pkg/errors"
)

// ErrHashing is returned when the password hash can not be computed or
// compared. It is distinct from generation failures.
var ErrHashing = errors.New("password hashing failed")

// Password hashes a plaintext password with Argon2id and returns the encoded
// hash in the standard $argon2id$ format.
func Password(plain string) (string, error) {
	encoded, err := argon2id.CreateHash(plain, argon2id.DefaultParams)
	if err != nil {
		return "", errors.Wrap(ErrHashing, err.Error())
	}

	return encoded, nil
}

// Verify reports whether plain matches the encoded Argon2id hash.
// The comparison is constant-time.
func Verify(plain, encoded string) (bool, error) {
	match, err := argon2id.ComparePasswordAndHash(plain, encoded)
	if err != nil {
		return false, errors.Wrap(ErrHashing, err.Error())
	}

	return match, nil
}
