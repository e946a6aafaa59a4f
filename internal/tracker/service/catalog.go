package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/balco/tracker/internal/tracker/domain"
	"github.com/balco/tracker/internal/tracker/store"
	"github.com/balco/tracker/pkg/idx"
	"github.com/balco/tracker/pkg/slogx"
	validation "github.com/go-ozzo/ozzo-validation"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type ProductTypeInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ColorInput struct {
	Name    string `json:"name"`
	HexCode string `json:"hex_code"`
}

// CatalogService manages the product types and colors production records
// refer to. Store outages surface as store.ErrUnavailable.
type CatalogService struct {
	Store store.Store
}

func (s *CatalogService) ListProductTypes(ctx context.Context) ([]domain.ProductType, error) {
	return s.Store.ProductTypes().ListProductTypes(ctx)
}

func (s *CatalogService) CreateProductType(ctx context.Context, in ProductTypeInput) (domain.ProductType, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if err := validationError(validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&in.Description, validation.Length(0, 500)),
	)); err != nil {
		return domain.ProductType{}, err
	}

	now := time.Now().UTC()
	pt := domain.ProductType{
		ID:          idx.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.ProductTypes().CreateProductType(ctx, pt); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.ProductType{}, ErrDuplicateName
		}
		return domain.ProductType{}, err
	}

	slogx.FromContext(ctx).Info("product type created",
		slog.String("product_type_id", pt.ID),
		slog.String("name", pt.Name),
	)
	return pt, nil
}

func (s *CatalogService) ListColors(ctx context.Context) ([]domain.Color, error) {
	return s.Store.Colors().ListColors(ctx)
}

func (s *CatalogService) CreateColor(ctx context.Context, in ColorInput) (domain.Color, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.HexCode = strings.ToUpper(strings.TrimSpace(in.HexCode))
	if err := validationError(validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&in.HexCode, validation.Required, validation.Match(hexColorPattern)),
	)); err != nil {
		return domain.Color{}, err
	}

	now := time.Now().UTC()
	c := domain.Color{
		ID:        idx.New().String(),
		Name:      in.Name,
		HexCode:   in.HexCode,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Colors().CreateColor(ctx, c); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Color{}, ErrDuplicateName
		}
		return domain.Color{}, err
	}

	slogx.FromContext(ctx).Info("color created",
		slog.String("color_id", c.ID),
		slog.String("name", c.Name),
	)
	return c, nil
}
