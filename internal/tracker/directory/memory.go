package directory

import (
	"context"
	"sync"

	"github.com/balco/tracker/internal/tracker/domain"
)

// MemoryTier holds accounts registered while the database was unreachable.
// It lives for the process lifetime only. Adding does not check for an
// existing email, so two racing registrations may both land here.
type MemoryTier struct {
	mu    sync.RWMutex
	users []domain.User
}

func NewMemoryTier() *MemoryTier { return &MemoryTier{} }

func (*MemoryTier) Name() string { return "memory" }

// Add appends u. The email is stored normalized.
func (t *MemoryTier) Add(u domain.User) {
	u.Email = NormalizeEmail(u.Email)

	t.mu.Lock()
	t.users = append(t.users, u)
	t.mu.Unlock()
}

// FindByEmail returns the earliest added record for email.
func (t *MemoryTier) FindByEmail(_ context.Context, email string) (domain.User, error) {
	email = NormalizeEmail(email)

	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, u := range t.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, ErrNotFound
}

// Len reports how many accounts are held.
func (t *MemoryTier) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.users)
}
