package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// defaultCost is the bcrypt work factor used for new password hashes.
const defaultCost = 10

// PasswordHasher wraps bcrypt hashing and verification. The cost is held in
// a struct so tests can inject the bcrypt minimum and avoid the hashing
// latency of the production work factor.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the production cost.
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: defaultCost}
}

// NewPasswordHasherWithCost returns a hasher with a custom cost. Intended
// for tests.
func NewPasswordHasherWithCost(cost int) *PasswordHasher {
	return &PasswordHasher{cost: cost}
}

// Hash derives a salted one-way hash of the plaintext. The salt and cost are
// embedded in the output, so the result is self-contained.
func (p *PasswordHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether the plaintext matches the stored hash. A mismatch
// is an expected outcome and returns false, never an error.
func (p *PasswordHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
