package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/balco/tracker/internal/tracker/directory"
	"github.com/balco/tracker/internal/tracker/domain"
	"github.com/balco/tracker/pkg/cryptox"
	"github.com/balco/tracker/pkg/idx"
	"github.com/balco/tracker/pkg/slogx"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)

// RegisterInput is a registration request. Role and Department are optional.
type RegisterInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

func (in *RegisterInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = directory.NormalizeEmail(in.Email)
	in.Role = strings.TrimSpace(in.Role)
	in.Department = strings.TrimSpace(in.Department)
}

func (in RegisterInput) validate() error {
	roles := make([]any, 0, len(domain.Roles))
	for _, r := range domain.Roles {
		roles = append(roles, string(r))
	}
	return validationError(validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&in.Email, validation.Required, validation.Length(3, 254), validation.Match(emailPattern)),
		validation.Field(&in.Password, validation.Required, validation.By(maxBytes(72))),
		validation.Field(&in.Role, validation.In(roles...)),
	))
}

// maxBytes bounds a string by its encoded length. bcrypt refuses passwords
// longer than 72 bytes.
func maxBytes(n int) validation.RuleFunc {
	return func(v any) error {
		if s, _ := v.(string); len(s) > n {
			return fmt.Errorf("must be at most %d bytes", n)
		}
		return nil
	}
}

// RegistrationService creates user accounts. When the database cannot take
// the write the account is kept in the memory tier instead and the caller
// still sees a success.
type RegistrationService struct {
	Persistent *directory.PersistentTier
	Memory     *directory.MemoryTier

	// Cost is the bcrypt cost; zero means cryptox.DefaultCost.
	Cost int

	Now func() time.Time
}

func NewRegistrationService(persistent *directory.PersistentTier, memory *directory.MemoryTier, cost int) *RegistrationService {
	return &RegistrationService{Persistent: persistent, Memory: memory, Cost: cost, Now: time.Now}
}

// Register validates in, hashes the password and stores the account.
// It returns *ValidationError or ErrDuplicateEmail for caller mistakes.
func (s *RegistrationService) Register(ctx context.Context, in RegisterInput) (domain.RegisteredUser, error) {
	log := slogx.FromContext(ctx)

	in.normalize()
	if err := in.validate(); err != nil {
		return domain.RegisteredUser{}, err
	}

	// Hash before touching storage so the fallback path stores the same digest.
	hash, err := cryptox.HashPassword(in.Password, s.Cost)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.RegisteredUser{}, err
	}

	role := domain.Role(in.Role)
	if role == "" {
		role = domain.RoleUser
	}
	dept := in.Department
	if dept == "" {
		dept = domain.DefaultDepartment
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	u := domain.User{
		ID:           idx.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		Department:   dept,
		CreatedAt:    now().UTC(),
	}

	storeErr := s.persist(ctx, u)
	switch {
	case storeErr == nil:
		log.Info("user registered", slog.String("user_id", u.ID), slog.String("role", string(u.Role)))
	case errors.Is(storeErr, ErrDuplicateEmail):
		log.Info("registration rejected, email in use")
		return domain.RegisteredUser{}, ErrDuplicateEmail
	default:
		u.ID = uuid.NewString()
		u.CreatedAt = now().UTC()
		s.Memory.Add(u)
		log.Warn("persistent store unavailable, user kept in memory",
			slog.String("fallback", "memory"),
			slog.String("user_id", u.ID),
			slog.Any("error", storeErr),
		)
	}

	return domain.RegisteredUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}, nil
}

// persist runs the collision check and the insert. The unique index on
// email settles a race between two registrations that both pass the check.
func (s *RegistrationService) persist(ctx context.Context, u domain.User) error {
	_, err := s.Persistent.FindByEmail(ctx, u.Email)
	switch {
	case err == nil:
		return ErrDuplicateEmail
	case !errors.Is(err, directory.ErrNotFound):
		return err
	}

	if err := s.Persistent.Create(ctx, u); err != nil {
		if errors.Is(err, directory.ErrEmailTaken) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}
