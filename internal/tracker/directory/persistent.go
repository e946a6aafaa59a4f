package directory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/balco/tracker/internal/tracker/domain"
	"github.com/balco/tracker/internal/tracker/store"
)

// PersistentTier looks users up in the database.
type PersistentTier struct {
	Users store.Users

	// Timeout bounds each lookup. Zero leaves the caller's deadline alone.
	Timeout time.Duration
}

func NewPersistentTier(users store.Users, timeout time.Duration) *PersistentTier {
	return &PersistentTier{Users: users, Timeout: timeout}
}

func (*PersistentTier) Name() string { return "persistent" }

func (t *PersistentTier) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	ctx, cancel := t.bound(ctx)
	defer cancel()

	u, err := t.Users.GetUserByEmail(ctx, NormalizeEmail(email))
	switch {
	case err == nil:
		return u, nil
	case errors.Is(err, store.ErrNotFound):
		return domain.User{}, ErrNotFound
	default:
		return domain.User{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
}

// Create stores u. A taken email yields ErrEmailTaken, any other storage
// failure ErrUnavailable.
func (t *PersistentTier) Create(ctx context.Context, u domain.User) error {
	ctx, cancel := t.bound(ctx)
	defer cancel()

	u.Email = NormalizeEmail(u.Email)
	err := t.Users.CreateUser(ctx, u)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrAlreadyExists):
		return ErrEmailTaken
	default:
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
}

func (t *PersistentTier) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if t.Timeout > 0 {
		return context.WithTimeout(ctx, t.Timeout)
	}
	return ctx, func() {}
}
