package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/balco/tracker/internal/tracker/directory"
	"github.com/balco/tracker/internal/tracker/domain"
	"github.com/balco/tracker/internal/tracker/store"
	"github.com/balco/tracker/pkg/cryptox"
	"github.com/balco/tracker/pkg/idx"
	"github.com/balco/tracker/pkg/slogx"
	"gopkg.in/yaml.v3"
)

type SeedUser struct {
	Name       string      `yaml:"name"`
	Email      string      `yaml:"email"`
	Password   string      `yaml:"password"`
	Role       domain.Role `yaml:"role"`
	Department string      `yaml:"department"`
}

type SeedProductType struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type SeedColor struct {
	Name    string `yaml:"name"`
	HexCode string `yaml:"hex_code"`
}

// SeedData is the content of a seed file.
type SeedData struct {
	Users        []SeedUser        `yaml:"users"`
	ProductTypes []SeedProductType `yaml:"product_types"`
	Colors       []SeedColor       `yaml:"colors"`
}

// DefaultSeed is used when no seed file is configured.
var DefaultSeed = SeedData{
	Users: []SeedUser{
		{Name: "Admin", Email: "admin@balco.com", Password: "admin123", Role: domain.RoleAdmin, Department: "Yönetim"},
		{Name: "Standard User", Email: "user@balco.com", Password: "user123", Role: domain.RoleUser},
	},
	ProductTypes: []SeedProductType{
		{Name: "Plastik Kasa", Description: "Elektronik cihazlar için plastik kasa"},
		{Name: "Kapak", Description: "Çeşitli kapak türleri"},
		{Name: "Tıpa", Description: "Şişe ve kap tıpaları"},
		{Name: "Conta", Description: "Su geçirmez conta elemanları"},
		{Name: "Düğme", Description: "Plastik düğme çeşitleri"},
	},
	Colors: []SeedColor{
		{Name: "Beyaz", HexCode: "#FFFFFF"},
		{Name: "Siyah", HexCode: "#000000"},
		{Name: "Kırmızı", HexCode: "#FF0000"},
		{Name: "Mavi", HexCode: "#0000FF"},
		{Name: "Yeşil", HexCode: "#00FF00"},
		{Name: "Sarı", HexCode: "#FFFF00"},
		{Name: "Turuncu", HexCode: "#FFA500"},
		{Name: "Mor", HexCode: "#800080"},
		{Name: "Gri", HexCode: "#808080"},
		{Name: "Kahverengi", HexCode: "#8B4513"},
	},
}

// LoadSeed reads a YAML seed file. An empty path returns DefaultSeed.
func LoadSeed(path string) (SeedData, error) {
	if path == "" {
		return DefaultSeed, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return SeedData{}, fmt.Errorf("read seed file: %w", err)
	}
	var d SeedData
	if err := yaml.Unmarshal(b, &d); err != nil {
		return SeedData{}, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return d, nil
}

// SeedReport counts what a Seed run created and what already existed.
type SeedReport struct {
	UsersCreated, UsersSkipped               int
	ProductTypesCreated, ProductTypesSkipped int
	ColorsCreated, ColorsSkipped             int
}

// Seeder ensures the seed entries exist in the database. Entries are looked
// up by email or name first, and an insert that loses a race to a concurrent
// writer counts as skipped, so running it against a live service is safe.
type Seeder struct {
	Store store.Store

	// Cost is the bcrypt cost; zero means cryptox.DefaultCost.
	Cost int
}

func (s *Seeder) Seed(ctx context.Context, d SeedData) (SeedReport, error) {
	log := slogx.FromContext(ctx)
	var rep SeedReport

	// On an empty users table every lookup would miss; inserts alone decide.
	fresh, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return rep, fmt.Errorf("count users: %w", err)
	}
	if fresh {
		log.Info("users table is empty, seeding without lookups")
	}

	for _, su := range d.Users {
		created, err := s.seedUser(ctx, su, fresh)
		if err != nil {
			return rep, fmt.Errorf("seed user %s: %w", su.Email, err)
		}
		if created {
			rep.UsersCreated++
			log.Info("seeded user", slog.String("email", su.Email), slog.String("role", string(su.Role)))
		} else {
			rep.UsersSkipped++
		}
	}

	for _, sp := range d.ProductTypes {
		created, err := s.seedProductType(ctx, sp)
		if err != nil {
			return rep, fmt.Errorf("seed product type %s: %w", sp.Name, err)
		}
		if created {
			rep.ProductTypesCreated++
			log.Info("seeded product type", slog.String("name", sp.Name))
		} else {
			rep.ProductTypesSkipped++
		}
	}

	for _, sc := range d.Colors {
		created, err := s.seedColor(ctx, sc)
		if err != nil {
			return rep, fmt.Errorf("seed color %s: %w", sc.Name, err)
		}
		if created {
			rep.ColorsCreated++
			log.Info("seeded color", slog.String("name", sc.Name))
		} else {
			rep.ColorsSkipped++
		}
	}

	return rep, nil
}

func (s *Seeder) seedUser(ctx context.Context, su SeedUser, fresh bool) (bool, error) {
	email := directory.NormalizeEmail(su.Email)
	role := su.Role
	if role == "" {
		role = domain.RoleUser
	}
	if email == "" || !role.Valid() {
		return false, fmt.Errorf("need an email and a valid role, got %q/%q", email, role)
	}

	if !fresh {
		_, err := s.Store.Users().GetUserByEmail(ctx, email)
		switch {
		case err == nil:
			return false, nil
		case !errors.Is(err, store.ErrNotFound):
			return false, err
		}
	}

	hash, err := cryptox.HashPassword(su.Password, s.Cost)
	if err != nil {
		return false, err
	}
	dept := strings.TrimSpace(su.Department)
	if dept == "" {
		dept = domain.DefaultDepartment
	}

	return created(s.Store.Users().CreateUser(ctx, domain.User{
		ID:           idx.New().String(),
		Name:         strings.TrimSpace(su.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Department:   dept,
		CreatedAt:    time.Now().UTC(),
	}))
}

func (s *Seeder) seedProductType(ctx context.Context, sp SeedProductType) (bool, error) {
	_, err := s.Store.ProductTypes().GetProductTypeByName(ctx, sp.Name)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, store.ErrNotFound):
		return false, err
	}

	now := time.Now().UTC()
	return created(s.Store.ProductTypes().CreateProductType(ctx, domain.ProductType{
		ID:          idx.New().String(),
		Name:        sp.Name,
		Description: sp.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}))
}

func (s *Seeder) seedColor(ctx context.Context, sc SeedColor) (bool, error) {
	if !hexColorPattern.MatchString(sc.HexCode) {
		return false, fmt.Errorf("bad hex code %q", sc.HexCode)
	}
	_, err := s.Store.Colors().GetColorByName(ctx, sc.Name)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, store.ErrNotFound):
		return false, err
	}

	now := time.Now().UTC()
	return created(s.Store.Colors().CreateColor(ctx, domain.Color{
		ID:        idx.New().String(),
		Name:      sc.Name,
		HexCode:   strings.ToUpper(sc.HexCode),
		CreatedAt: now,
		UpdatedAt: now,
	}))
}

// created treats losing an insert race as "already there".
func created(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrAlreadyExists):
		return false, nil
	default:
		return false, err
	}
}
