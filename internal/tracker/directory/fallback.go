package directory

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/balco/tracker/internal/tracker/domain"
	"github.com/balco/tracker/pkg/cryptox"
	"gopkg.in/yaml.v3"
)

// FallbackAccount is a fixed account that authenticates regardless of the
// database state. PasswordHash must be a precomputed bcrypt digest.
type FallbackAccount struct {
	ID           string      `yaml:"id"`
	Name         string      `yaml:"name"`
	Email        string      `yaml:"email"`
	PasswordHash string      `yaml:"password_hash"`
	Role         domain.Role `yaml:"role"`
	Department   string      `yaml:"department"`
}

// DefaultFallbackAccounts are the built-in accounts (admin123 and user123).
var DefaultFallbackAccounts = []FallbackAccount{
	{
		ID:           "1",
		Name:         "Admin User",
		Email:        "admin@balco.com",
		PasswordHash: "$2b$12$dRZYNyXNV728t.kE9Y6i1eux.rRKnNndKekimoOrTOUXsEBPgtM6K",
		Role:         domain.RoleAdmin,
		Department:   "Yönetim",
	},
	{
		ID:           "2",
		Name:         "Standard User",
		Email:        "user@balco.com",
		PasswordHash: "$2b$12$2CxbQ9x1PZigAdtkF91UGeHCJxEPAidhwOqVYODetvKJuR/VQq6Z6",
		Role:         domain.RoleUser,
		Department:   domain.DefaultDepartment,
	},
}

var ErrInvalidFallback = errors.New("directory: invalid fallback account")

// FallbackTier is immutable after construction.
type FallbackTier struct {
	users []domain.User
}

// NewFallbackTier validates accounts and builds the tier. Every account needs
// an id, an email, a valid role and a parseable bcrypt digest.
func NewFallbackTier(accounts []FallbackAccount) (*FallbackTier, error) {
	users := make([]domain.User, 0, len(accounts))
	seen := make(map[string]struct{}, len(accounts))
	for i, a := range accounts {
		email := NormalizeEmail(a.Email)
		switch {
		case a.ID == "" || email == "":
			return nil, fmt.Errorf("%w: entry %d needs id and email", ErrInvalidFallback, i)
		case !a.Role.Valid():
			return nil, fmt.Errorf("%w: %s has role %q", ErrInvalidFallback, email, a.Role)
		}
		if _, err := cryptox.DigestCost(a.PasswordHash); err != nil {
			return nil, fmt.Errorf("%w: %s password hash: %w", ErrInvalidFallback, email, err)
		}
		if _, dup := seen[email]; dup {
			return nil, fmt.Errorf("%w: %s listed twice", ErrInvalidFallback, email)
		}
		seen[email] = struct{}{}

		users = append(users, domain.User{
			ID:           a.ID,
			Name:         a.Name,
			Email:        email,
			PasswordHash: a.PasswordHash,
			Role:         a.Role,
			Department:   a.Department,
		})
	}
	return &FallbackTier{users: users}, nil
}

func (*FallbackTier) Name() string { return "fallback" }

func (t *FallbackTier) FindByEmail(_ context.Context, email string) (domain.User, error) {
	email = NormalizeEmail(email)
	for _, u := range t.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, ErrNotFound
}

// Len reports how many accounts are configured.
func (t *FallbackTier) Len() int { return len(t.users) }

type fallbackFile struct {
	Accounts []FallbackAccount `yaml:"accounts"`
}

// LoadFallbackAccounts reads accounts from a YAML file of the form
//
//	accounts:
//	  - id: "1"
//	    email: admin@balco.com
//	    password_hash: $2b$12$...
//	    role: admin
//
// An empty path returns DefaultFallbackAccounts.
func LoadFallbackAccounts(path string) ([]FallbackAccount, error) {
	if path == "" {
		return DefaultFallbackAccounts, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fallback accounts: %w", err)
	}

	var f fallbackFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse fallback accounts %s: %w", path, err)
	}
	return f.Accounts, nil
}
