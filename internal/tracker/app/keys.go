package app

import (
	"fmt"
	"log/slog"

	"github.com/balco/tracker/pkg/cryptox"
	"github.com/balco/tracker/pkg/jwtx"
)

// InitSessionKeys builds the KeyManager that signs session tokens.
//
// With SESSION_KEY_FILE set the key is loaded from (or created at) that path
// and sessions survive restarts. Without it a key is generated in memory and
// all existing sessions become invalid when the service restarts.
func InitSessionKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyManager, error) {
	opts := jwtx.KeyManagerOptions{Issuer: cfg.Session.Issuer}

	if cfg.Session.KeyFile != "" {
		pemKey, err := cryptox.LoadOrGenerateEd25519Key(cfg.Session.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load session key: %w", err)
		}
		opts.PrivateKeyPEM = pemKey
	}

	km, err := jwtx.NewKeyManager(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session keys: %w", err)
	}

	if cfg.Session.KeyFile != "" {
		logger.Info("session key loaded", "path", cfg.Session.KeyFile, "kid", km.Signer.KID())
	} else {
		logger.Warn("generated ephemeral session key, sessions end on restart", "kid", km.Signer.KID())
	}
	return km, nil
}
