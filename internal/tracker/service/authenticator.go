package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/balco/tracker/internal/tracker/directory"
	"github.com/balco/tracker/internal/tracker/domain"
	"github.com/balco/tracker/pkg/cryptox"
	"github.com/balco/tracker/pkg/slogx"
)

// Outcome classifies an authentication attempt. Callers outside this
// package only ever learn whether an identity was produced.
type Outcome int

const (
	OutcomeAuthenticated Outcome = iota
	OutcomeNoSuchUser
	OutcomeBadPassword
	OutcomeTierUnavailable // no tier matched and at least one could not answer
	OutcomeInternalError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAuthenticated:
		return "authenticated"
	case OutcomeNoSuchUser:
		return "no_such_user"
	case OutcomeBadPassword:
		return "bad_password"
	case OutcomeTierUnavailable:
		return "tier_unavailable"
	case OutcomeInternalError:
		return "internal_error"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is the detailed result of Attempt.
type Result struct {
	Outcome Outcome

	// Tier is the name of the tier that decided the attempt, if any.
	Tier string

	// Unavailable names the tiers that could not answer.
	Unavailable []string

	// Identity is set only when Outcome is OutcomeAuthenticated.
	Identity domain.Identity
}

var errTierPanic = errors.New("tier panicked")

// Authenticator checks credentials against the tiers in order. The first
// tier that knows the email decides the attempt.
type Authenticator struct {
	tiers []directory.Tier
}

// NewAuthenticator consults tiers in the order given: the in-memory tier,
// then the persistent tier, then the fallback tier.
func NewAuthenticator(tiers ...directory.Tier) *Authenticator {
	return &Authenticator{tiers: tiers}
}

// Authenticate returns the identity for valid credentials. Every failure,
// including internal ones, yields false.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (domain.Identity, bool) {
	r := a.Attempt(ctx, email, password)
	if r.Outcome != OutcomeAuthenticated {
		return domain.Identity{}, false
	}
	return r.Identity, true
}

// Attempt runs one authentication and reports how it ended.
func (a *Authenticator) Attempt(ctx context.Context, email, password string) (res Result) {
	log := slogx.FromContext(ctx)

	defer func() {
		if rec := recover(); rec != nil {
			log.Error("authentication panicked", slog.Any("panic", rec))
			res = Result{Outcome: OutcomeInternalError}
		}
	}()

	email = directory.NormalizeEmail(email)
	if email == "" || password == "" {
		return Result{Outcome: OutcomeNoSuchUser}
	}

	var unavailable []string
	for _, tier := range a.tiers {
		u, err := lookup(ctx, tier, email)
		switch {
		case err == nil:
			res = Result{Tier: tier.Name(), Unavailable: unavailable}
			if !cryptox.VerifyPassword(password, u.PasswordHash) {
				res.Outcome = OutcomeBadPassword
				log.Info("authentication failed",
					slog.String("outcome", res.Outcome.String()),
					slog.String("tier", res.Tier),
				)
				return res
			}
			res.Outcome = OutcomeAuthenticated
			res.Identity = domain.IdentityOf(u)
			log.Info("authenticated",
				slog.String("user_id", u.ID),
				slog.String("role", string(u.Role)),
				slog.String("tier", res.Tier),
			)
			return res

		case errors.Is(err, directory.ErrNotFound):
			continue

		case errors.Is(err, directory.ErrUnavailable):
			log.Warn("user tier unavailable, trying next tier",
				slog.String("tier", tier.Name()),
				slog.Any("error", err),
			)
			unavailable = append(unavailable, tier.Name())
			continue

		default:
			log.Error("user lookup failed",
				slog.String("tier", tier.Name()),
				slog.Any("error", err),
			)
			return Result{Outcome: OutcomeInternalError, Tier: tier.Name(), Unavailable: unavailable}
		}
	}

	res = Result{Outcome: OutcomeNoSuchUser, Unavailable: unavailable}
	if len(unavailable) > 0 {
		res.Outcome = OutcomeTierUnavailable
	}
	log.Info("authentication failed", slog.String("outcome", res.Outcome.String()))
	return res
}

// lookup confines a tier panic to that tier so it fails closed.
func lookup(ctx context.Context, tier directory.Tier, email string) (u domain.User, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %s: %v", errTierPanic, tier.Name(), rec)
		}
	}()
	return tier.FindByEmail(ctx, email)
}
