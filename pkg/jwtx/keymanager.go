package jwtx

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/balco/tracker/pkg/cryptox"
)

// KeyManager wires one Ed25519 signing key to the matching verifier and the
// KeySet published at the JWKS endpoint.
type KeyManager struct {
	Signer   Signer
	Verifier Verifier
	KeySet   *KeySet
}

// KeyManagerOptions configures the KeyManager.
type KeyManagerOptions struct {
	// Issuer is the issuer claim (iss) enforced on verification.
	Issuer string

	// Audience values enforced on verification. Empty disables the check.
	Audience []string

	// PrivateKeyPEM is a PKCS8 Ed25519 key. When empty a fresh key is
	// generated and every session is invalidated on restart.
	PrivateKeyPEM []byte
}

// NewKeyManager builds a KeyManager from the configured key, or from an
// ephemeral one when none is given.
func NewKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, fmt.Errorf("jwtx: Issuer is required")
	}

	var signer *EdDSASigner
	if len(opts.PrivateKeyPEM) == 0 {
		pemKey, err := cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, fmt.Errorf("jwtx: generate EdDSA key: %w", err)
		}
		kid, err := generateRandomKeyID()
		if err != nil {
			return nil, err
		}
		if signer, err = NewSignerEdDSA(kid, pemKey); err != nil {
			return nil, err
		}
	} else {
		// A configured key keeps the same kid across restarts so tokens
		// issued before a restart still verify.
		s, err := NewSignerEdDSA("", opts.PrivateKeyPEM)
		if err != nil {
			return nil, err
		}
		s.kid = thumbprintKeyID(s.pub)
		signer = s
	}
	if err := signer.Validate(); err != nil {
		return nil, err
	}

	keyset := NewKeySet()
	if err := keyset.AddSigner(signer); err != nil {
		return nil, fmt.Errorf("jwtx: add signer to keyset: %w", err)
	}

	return &KeyManager{
		Signer:   signer,
		Verifier: NewVerifierEdDSA(keyset, opts.Issuer, opts.Audience),
		KeySet:   keyset,
	}, nil
}

// IsReady returns true if the KeyManager has a key loaded.
func (km *KeyManager) IsReady() bool {
	return km != nil && km.KeySet.IsReady()
}

// generateRandomKeyID returns "tracker-{token}" with a 128-bit random token.
func generateRandomKeyID() (string, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		return "", fmt.Errorf("jwtx: generate key ID: %w", err)
	}
	return "tracker-" + token, nil
}

// thumbprintKeyID derives a stable kid from the public key.
func thumbprintKeyID(pub ed25519.PublicKey) string {
	sum := sha256.Sum256(pub)
	return "tracker-" + base64.RawURLEncoding.EncodeToString(sum[:16])
}
