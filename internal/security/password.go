package security

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost must stay compatible with hashes already in the users table.
const Cost = 10

// MaxPasswordBytes is the longest input bcrypt will hash.
const MaxPasswordBytes = 72

var ErrPasswordMismatch = errors.New("password does not match")

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), Cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// ComparePassword returns ErrPasswordMismatch for a wrong password and the
// bcrypt error for a malformed hash.
func ComparePassword(hash, pw string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}
