package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/balco/tracker/internal/tracker/domain"
	"github.com/balco/tracker/internal/tracker/store"
	"github.com/balco/tracker/pkg/idx"
	"github.com/balco/tracker/pkg/slogx"
	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

var (
	ErrUnknownProductType = errors.New("unknown product type")
	ErrUnknownColor       = errors.New("unknown color")
)

// RecordInput is a production entry as submitted by an operator. Date is a
// calendar day in domain.DateLayout.
type RecordInput struct {
	ProductTypeID string `json:"product_type_id"`
	ColorID       string `json:"color_id"`
	Quantity      int    `json:"quantity"`
	Date          string `json:"date"`
	Shift         string `json:"shift"`
	Operator      string `json:"operator"`
	Notes         string `json:"notes"`
	Quality       string `json:"quality"`
}

func (in RecordInput) validate() error {
	return validationError(validation.ValidateStruct(&in,
		validation.Field(&in.ProductTypeID, validation.Required),
		validation.Field(&in.ColorID, validation.Required),
		validation.Field(&in.Quantity, validation.Required, validation.Min(1)),
		validation.Field(&in.Date, validation.Required, validation.Date(domain.DateLayout)),
		validation.Field(&in.Shift, validation.Required,
			validation.In(string(domain.ShiftMorning), string(domain.ShiftAfternoon), string(domain.ShiftNight))),
		validation.Field(&in.Operator, validation.Required, validation.Length(1, 100)),
		validation.Field(&in.Notes, validation.Length(0, 1000)),
		validation.Field(&in.Quality,
			validation.In(string(domain.QualityA), string(domain.QualityB), string(domain.QualityC))),
	))
}

// RecordPage is one page of production records, newest first.
type RecordPage struct {
	Records []domain.ProductionRecord
	Total   int
	Page    int
	Pages   int
}

type ProductionService struct {
	Store store.Store

	Now func() time.Time
}

func (s *ProductionService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Create stores a record for createdBy, the session subject.
func (s *ProductionService) Create(ctx context.Context, in RecordInput, createdBy string) (domain.ProductionRecord, error) {
	in.ProductTypeID = strings.TrimSpace(in.ProductTypeID)
	in.ColorID = strings.TrimSpace(in.ColorID)
	in.Date = strings.TrimSpace(in.Date)
	in.Shift = strings.TrimSpace(in.Shift)
	in.Operator = strings.TrimSpace(in.Operator)
	in.Notes = strings.TrimSpace(in.Notes)
	in.Quality = strings.ToUpper(strings.TrimSpace(in.Quality))
	if err := in.validate(); err != nil {
		return domain.ProductionRecord{}, err
	}
	if in.Quality == "" {
		in.Quality = string(domain.QualityA)
	}
	date, _ := time.Parse(domain.DateLayout, in.Date)

	now := s.now()
	rec := domain.ProductionRecord{
		ID:            idx.NewAt(now).String(),
		ProductTypeID: in.ProductTypeID,
		ColorID:       in.ColorID,
		Quantity:      in.Quantity,
		Date:          date,
		Shift:         domain.Shift(in.Shift),
		Operator:      in.Operator,
		Notes:         in.Notes,
		Quality:       domain.Quality(in.Quality),
		CreatedBy:     createdBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// Catalog lookups and the insert share one transaction.
	var (
		pt    domain.ProductType
		color domain.Color
	)
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		if pt, err = tx.ProductTypes().GetProductTypeByID(ctx, in.ProductTypeID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUnknownProductType
			}
			return err
		}
		if color, err = tx.Colors().GetColorByID(ctx, in.ColorID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUnknownColor
			}
			return err
		}
		return tx.Production().CreateRecord(ctx, rec)
	})
	if err != nil {
		if errors.Is(err, ErrUnknownProductType) || errors.Is(err, ErrUnknownColor) {
			return domain.ProductionRecord{}, err
		}
		return domain.ProductionRecord{}, fmt.Errorf("create production record: %w", err)
	}

	rec.ProductTypeName = pt.Name
	rec.ColorName = color.Name
	rec.ColorHex = color.HexCode

	slogx.FromContext(ctx).Info("production recorded",
		slog.String("record_id", rec.ID),
		slog.String("product_type", pt.Name),
		slog.Int("quantity", rec.Quantity),
	)
	return rec, nil
}

// List returns page (1-based) of records. Out-of-range arguments are
// clamped: page to at least 1, limit to [1, MaxPageLimit].
func (s *ProductionService) List(ctx context.Context, page, limit int) (RecordPage, error) {
	if page < 1 {
		page = 1
	}
	switch {
	case limit < 1:
		limit = DefaultPageLimit
	case limit > MaxPageLimit:
		limit = MaxPageLimit
	}

	total, err := s.Store.Production().CountRecords(ctx)
	if err != nil {
		return RecordPage{}, err
	}
	records, err := s.Store.Production().ListRecords(ctx, (page-1)*limit, limit)
	if err != nil {
		return RecordPage{}, err
	}

	return RecordPage{
		Records: records,
		Total:   total,
		Page:    page,
		Pages:   (total + limit - 1) / limit,
	}, nil
}

// Summary aggregates every record. Today and the week are UTC calendar
// days; the week is the last seven days including today.
func (s *ProductionService) Summary(ctx context.Context) (domain.ProductionSummary, error) {
	p := s.Store.Production()
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var (
		sum domain.ProductionSummary
		err error
	)
	if sum.TodayTotal, err = p.SumQuantity(ctx, today, today); err != nil {
		return domain.ProductionSummary{}, err
	}
	if sum.WeeklyTotal, err = p.SumQuantity(ctx, today.AddDate(0, 0, -6), today); err != nil {
		return domain.ProductionSummary{}, err
	}
	if sum.RecordCount, err = p.CountRecords(ctx); err != nil {
		return domain.ProductionSummary{}, err
	}
	if sum.ProductTypeCount, err = p.CountProductTypesProduced(ctx); err != nil {
		return domain.ProductionSummary{}, err
	}
	if sum.ByProductType, err = p.QuantityByProductType(ctx); err != nil {
		return domain.ProductionSummary{}, err
	}
	if sum.ByShift, err = p.QuantityByShift(ctx); err != nil {
		return domain.ProductionSummary{}, err
	}
	if sum.ByQuality, err = p.QuantityByQuality(ctx); err != nil {
		return domain.ProductionSummary{}, err
	}
	return sum, nil
}
