package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/balco/tracker/internal/tracker/domain"
	"github.com/balco/tracker/pkg/jwtx"
)

var (
	ErrInvalidIdentity = errors.New("identity cannot hold a session")
	ErrInvalidSession  = errors.New("invalid session")
)

// SessionService binds an identity into a signed token and reads it back.
// The role is taken from the token on every read and never from storage,
// so a role change only applies after the holder signs in again.
type SessionService struct {
	Keys   *jwtx.KeyManager
	Issuer string
	TTL    time.Duration

	Now func() time.Time
}

func NewSessionService(keys *jwtx.KeyManager, issuer string, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	return &SessionService{Keys: keys, Issuer: issuer, TTL: ttl, Now: time.Now}
}

// Issue signs a session token for id.
func (s *SessionService) Issue(id domain.Identity) (string, time.Time, error) {
	if id.ID == "" || !id.Role.Valid() {
		return "", time.Time{}, ErrInvalidIdentity
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	claims := jwtx.NewSessionClaims(id.ID, string(id.Role), id.Email, id.Name, s.TTL, s.Issuer, nil, now())
	token, err := s.Keys.Signer.Sign(claims)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session: %w", err)
	}
	return token, claims.ExpiresAt.Time, nil
}

// Read verifies token and returns the identity bound into it.
func (s *SessionService) Read(token string) (domain.Identity, error) {
	claims, err := s.Keys.Verifier.Verify(token)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	return IdentityFromClaims(claims)
}

// Verifier exposes the token verifier for the HTTP middleware.
func (s *SessionService) Verifier() jwtx.Verifier { return s.Keys.Verifier }

// IdentityFromClaims maps verified session claims onto an identity.
func IdentityFromClaims(c jwtx.Claims) (domain.Identity, error) {
	role := domain.Role(c.Role)
	if c.Subject == "" || !role.Valid() {
		return domain.Identity{}, fmt.Errorf("%w: missing subject or unknown role", ErrInvalidSession)
	}
	return domain.Identity{ID: c.Subject, Email: c.Email, Name: c.Name, Role: role}, nil
}
