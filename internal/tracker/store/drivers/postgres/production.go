package postgres

import (
	"context"
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
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

func (r *productionRepo) CreateRecord(ctx context.Context, rec domain.ProductionRecord) error {
	_, err := r.db.ExecContext(ctx, createRecord,
		rec.ID, rec.ProductTypeID, rec.ColorID, rec.Quantity, rec.Date.Format(domain.DateLayout),
		string(rec.Shift), rec.Operator, rec.Notes, string(rec.Quality), rec.CreatedBy,
		rec.CreatedAt, rec.UpdatedAt,
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
LIMIT $1 OFFSET $2`

func (r *productionRepo) ListRecords(ctx context.Context, offset, limit int) ([]domain.ProductionRecord, error) {
	rows, err := r.db.QueryContext(ctx, listRecords, limit, offset)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []domain.ProductionRecord
	for rows.Next() {
		var rec domain.ProductionRecord
		if err := rows.Scan(
			&rec.ID, &rec.ProductTypeID, &rec.ColorID, &rec.Quantity, &rec.Date, &rec.Shift,
			&rec.Operator, &rec.Notes, &rec.Quality, &rec.CreatedBy, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.ProductTypeName, &rec.ColorName, &rec.ColorHex,
		); err != nil {
			return nil, mapErr(err)
		}
		rec.Date = rec.Date.UTC()
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
		`SELECT COALESCE(SUM(quantity), 0) FROM production_records WHERE production_date BETWEEN $1::date AND $2::date`,
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

const quantityByShift = `SELECT shift, SUM(quantity) FROM production_records GROUP BY shift`

func (r *productionRepo) QuantityByShift(ctx context.Context) (map[domain.Shift]int, error) {
	out := make(map[domain.Shift]int)
	err := r.groupSum(ctx, quantityByShift, func(k string, n int) { out[domain.Shift(k)] = n })
	return out, err
}

const quantityByQuality = `SELECT quality, SUM(quantity) FROM production_records GROUP BY quality`

func (r *productionRepo) QuantityByQuality(ctx context.Context) (map[domain.Quality]int, error) {
	out := make(map[domain.Quality]int)
	err := r.groupSum(ctx, quantityByQuality, func(k string, n int) { out[domain.Quality(k)] = n })
	return out, err
}

func (r *productionRepo) groupSum(ctx context.Context, query string, put func(string, int)) error {
	rows, err := r.db.QueryContext(ctx, query)
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
