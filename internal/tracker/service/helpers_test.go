package service

import (
	"context"
	"testing"

	"github.com/balco/tracker/internal/tracker/directory"
	"github.com/balco/tracker/internal/tracker/domain"
	"github.com/balco/tracker/internal/tracker/store"
	"github.com/balco/tracker/internal/tracker/store/drivers/offline"
	"github.com/balco/tracker/internal/tracker/store/drivers/sqlite"
	"github.com/balco/tracker/pkg/cryptox"
	"github.com/balco/tracker/pkg/slogx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testCost = bcrypt.MinCost

func testContext() context.Context {
	return slogx.WithContext(context.Background(), slogx.Discard())
}

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func mustHash(t *testing.T, pw string) string {
	t.Helper()
	h, err := cryptox.HashPassword(pw, testCost)
	require.NoError(t, err)
	return h
}

// testFallback mirrors the built-in accounts at a test-friendly cost.
func testFallback(t *testing.T) *directory.FallbackTier {
	t.Helper()
	tier, err := directory.NewFallbackTier([]directory.FallbackAccount{
		{ID: "1", Name: "Admin User", Email: "admin@balco.com", PasswordHash: mustHash(t, "admin123"), Role: domain.RoleAdmin},
		{ID: "2", Name: "Standard User", Email: "user@balco.com", PasswordHash: mustHash(t, "user123"), Role: domain.RoleUser},
	})
	require.NoError(t, err)
	return tier
}

// harness wires the tiers the way the application does.
type harness struct {
	memory     *directory.MemoryTier
	persistent *directory.PersistentTier
	fallback   *directory.FallbackTier
	auth       *Authenticator
	reg        *RegistrationService
}

func newHarness(t *testing.T, s store.Store) *harness {
	t.Helper()
	h := &harness{
		memory:     directory.NewMemoryTier(),
		persistent: directory.NewPersistentTier(s.Users(), 0),
		fallback:   testFallback(t),
	}
	h.auth = NewAuthenticator(h.memory, h.persistent, h.fallback)
	h.reg = NewRegistrationService(h.persistent, h.memory, testCost)
	return h
}

func newOfflineHarness(t *testing.T) *harness {
	t.Helper()
	return newHarness(t, offline.NewStore())
}
