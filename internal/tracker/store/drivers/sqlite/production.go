package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/balco/tracker/internal/tracker/domain"
)

type productionRepo struct {
	db DBTX
}

const createRecord = `
INSERT INTO production_records (
    id, product_type_id, color_id, quantity, production_date, shift,
    operator, notes, quality, created_by, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

func (r *productionRepo) CreateRecord(ctx context.Context, rec domain.ProductionRecord) error {
	_, err := r.db.ExecContext(ctx, createRecord,
		rec.ID, rec.ProductTypeID, rec.ColorID, rec.Quantity, rec.Date.Format(domain.DateLayout),
		string(rec.Shift), rec.Operator, rec.Notes, string(rec.Quality), rec.CreatedBy,
		rec.CreatedAt.UTC(), rec.UpdatedAt.UTC(),
	)
	return mapWriteErr(err)
}

const listRecords = `
SELECT r.id, r.product_type_id, r.color_id, r.quantity, r.production_date, r.shift,
       r.operator, r.notes, r.quality, r.created_by, r.created_at, r.updated_at,
       pt.name, c.name, c.hex_code
FROM production_records r
JOIN product_types pt ON pt.id = r.product_type_id
JOIN colors c ON c.id = r.color_id
ORDER BY r.created_at DESC, r.id DESC
LIMIT ? OFFSET ?`

func (r *productionRepo) ListRecords(ctx context.Context, offset, limit int) ([]domain.ProductionRecord, error) {
	rows, err := r.db.QueryContext(ctx, listRecords, limit, offset)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []domain.ProductionRecord
	for rows.Next() {
		var (
			rec  domain.ProductionRecord
			date string
		)
		if err := rows.Scan(
			&rec.ID, &rec.ProductTypeID, &rec.ColorID, &rec.Quantity, &date, &rec.Shift,
			&rec.Operator, &rec.Notes, &rec.Quality, &rec.CreatedBy, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.ProductTypeName, &rec.ColorName, &rec.ColorHex,
		); err != nil {
			return nil, mapErr(err)
		}
		if rec.Date, err = time.Parse(domain.DateLayout, date); err != nil {
			return nil, fmt.Errorf("sqlite: record %s has bad date %q: %w", rec.ID, date, err)
		}
		out = append(out, rec)
	}
	return out, mapErr(rows.Err())
}

func (r *productionRepo) CountRecords(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM production_records`).Scan(&n)
	return n, mapErr(err)
}

func (r *productionRepo) SumQuantity(ctx context.Context, from, to time.Time) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM production_records WHERE production_date BETWEEN ? AND ?`,
		from.Format(domain.DateLayout), to.Format(domain.DateLayout),
	).Scan(&n)
	return n, mapErr(err)
}

func (r *productionRepo) CountProductTypesProduced(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT product_type_id) FROM production_records`).Scan(&n)
	return n, mapErr(err)
}

const quantityByProductType = `
SELECT pt.name, SUM(r.quantity)
FROM production_records r
JOIN product_types pt ON pt.id = r.product_type_id
GROUP BY pt.name
ORDER BY SUM(r.quantity) DESC, pt.name`

func (r *productionRepo) QuantityByProductType(ctx context.Context) ([]domain.NamedQuantity, error) {
	rows, err := r.db.QueryContext(ctx, quantityByProductType)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []domain.NamedQuantity
	for rows.Next() {
		var nq domain.NamedQuantity
		if err := rows.Scan(&nq.Name, &nq.Quantity); err != nil {
			return nil, mapErr(err)
		}
		out = append(out, nq)
	}
	return out, mapErr(rows.Err())
}

func (r *productionRepo) QuantityByShift(ctx context.Context) (map[domain.Shift]int, error) {
	out := make(map[domain.Shift]int)
	err := r.groupSum(ctx, "shift", func(k string, n int) { out[domain.Shift(k)] = n })
	return out, err
}

func (r *productionRepo) QuantityByQuality(ctx context.Context) (map[domain.Quality]int, error) {
	out := make(map[domain.Quality]int)
	err := r.groupSum(ctx, "quality", func(k string, n int) { out[domain.Quality(k)] = n })
	return out, err
}

// groupSum sums quantity grouped by column, which is always a constant from
// this file.
func (r *productionRepo) groupSum(ctx context.Context, column string, put func(string, int)) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+column+`, SUM(quantity) FROM production_records GROUP BY `+column)
	if err != nil {
		return mapErr(err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			k string
			n int
		)
		if err := rows.Scan(&k, &n); err != nil {
			return mapErr(err)
		}
		put(k, n)
	}
	return mapErr(rows.Err())
}
