package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used for stored credentials (2^12 rounds).
const DefaultCost = 12

// ErrHash reports that a password could not be hashed.
var ErrHash = errors.New("cryptox: hash failed")

// HashPassword generates a salted bcrypt digest of password using cost.
// A cost of zero selects DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: empty password", ErrHash)
	}
	if cost == 0 {
		cost = DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return "", fmt.Errorf("%w: cost %d outside [%d, %d]", ErrHash, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHash, err)
	}
	return string(h), nil
}

// VerifyPassword reports whether password matches the bcrypt digest.
// Malformed digests never verify.
func VerifyPassword(password, digest string) bool {
	if password == "" || digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// DigestCost returns the work factor encoded in a bcrypt digest.
func DigestCost(digest string) (int, error) {
	return bcrypt.Cost([]byte(digest))
}
