package postgres

import (
	"context"

	"github.com/balco/tracker/internal/tracker/domain"
)

type rowScanner interface{ Scan(...any) error }

type productTypesRepo struct {
	db DBTX
}

const productTypeColumns = `id, name, description, created_at, updated_at`

func scanProductType(row rowScanner) (domain.ProductType, error) {
	var pt domain.ProductType
	err := row.Scan(&pt.ID, &pt.Name, &pt.Description, &pt.CreatedAt, &pt.UpdatedAt)
	return pt, err
}

func (r *productTypesRepo) ListProductTypes(ctx context.Context) ([]domain.ProductType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+productTypeColumns+` FROM product_types ORDER BY name`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []domain.ProductType
	for rows.Next() {
		pt, err := scanProductType(rows)
		if err != nil {
			return nil, mapErr(err)
		}
		out = append(out, pt)
	}
	return out, mapErr(rows.Err())
}

func (r *productTypesRepo) GetProductTypeByID(ctx context.Context, id string) (domain.ProductType, error) {
	pt, err := scanProductType(r.db.QueryRowContext(ctx, `SELECT `+productTypeColumns+` FROM product_types WHERE id = $1`, id))
	return pt, mapNotFound(err)
}

func (r *productTypesRepo) GetProductTypeByName(ctx context.Context, name string) (domain.ProductType, error) {
	pt, err := scanProductType(r.db.QueryRowContext(ctx, `SELECT `+productTypeColumns+` FROM product_types WHERE name = $1`, name))
	return pt, mapNotFound(err)
}

func (r *productTypesRepo) CreateProductType(ctx context.Context, pt domain.ProductType) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO product_types (id, name, description, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		pt.ID, pt.Name, pt.Description, pt.CreatedAt, pt.UpdatedAt,
	)
	return mapWriteErr(err)
}

type colorsRepo struct {
	db DBTX
}

const colorColumns = `id, name, hex_code, created_at, updated_at`

func scanColor(row rowScanner) (domain.Color, error) {
	var c domain.Color
	err := row.Scan(&c.ID, &c.Name, &c.HexCode, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *colorsRepo) ListColors(ctx context.Context) ([]domain.Color, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+colorColumns+` FROM colors ORDER BY name`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []domain.Color
	for rows.Next() {
		c, err := scanColor(rows)
		if err != nil {
			return nil, mapErr(err)
		}
		out = append(out, c)
	}
	return out, mapErr(rows.Err())
}

func (r *colorsRepo) GetColorByID(ctx context.Context, id string) (domain.Color, error) {
	c, err := scanColor(r.db.QueryRowContext(ctx, `SELECT `+colorColumns+` FROM colors WHERE id = $1`, id))
	return c, mapNotFound(err)
}

func (r *colorsRepo) GetColorByName(ctx context.Context, name string) (domain.Color, error) {
	c, err := scanColor(r.db.QueryRowContext(ctx, `SELECT `+colorColumns+` FROM colors WHERE name = $1`, name))
	return c, mapNotFound(err)
}

func (r *colorsRepo) CreateColor(ctx context.Context, c domain.Color) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO colors (id, name, hex_code, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, c.HexCode, c.CreatedAt, c.UpdatedAt,
	)
	return mapWriteErr(err)
}
