package signup

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher turns a plaintext password into an irreversible digest.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
}

// BcryptHasher hashes passwords with bcrypt, which salts per password.
type BcryptHasher struct {
	// Cost overrides bcrypt.DefaultCost when non-zero. Tests lower it.
	Cost int
}

// Hash returns the bcrypt digest of plaintext.
func (h BcryptHasher) Hash(plaintext string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("signup: hash password: %w", err)
	}
	return string(digest), nil
}

var _ PasswordHasher = BcryptHasher{}
