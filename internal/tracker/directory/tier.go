// Package directory resolves users by email across the account tiers the
// authenticator consults: accounts registered during a storage outage, the
// persistent store, and the fixed fallback accounts.
package directory

import (
	"context"
	"errors"
	"strings"

	"github.com/balco/tracker/internal/tracker/domain"
)

var (
	ErrNotFound   = errors.New("directory: no such user")
	ErrEmailTaken = errors.New("directory: email already registered")

	// ErrUnavailable means the tier could not answer. It is never a miss.
	ErrUnavailable = errors.New("directory: tier unavailable")
)

// Tier is one source of user records.
type Tier interface {
	Name() string
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

// NormalizeEmail is the canonical form emails are stored and matched in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
