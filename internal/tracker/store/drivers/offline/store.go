// Package offline is the store used when no database is configured. Every
// call reports store.ErrUnavailable, so the service runs on its in-memory and
// configured fallback accounts only.
package offline

import (
	"context"
	"time"

	"github.com/balco/tracker/internal/tracker/domain"
	"github.com/balco/tracker/internal/tracker/store"
)

type Store struct{}

func NewStore() *Store { return &Store{} }

func (Store) Users() store.Users               { return repo{} }
func (Store) ProductTypes() store.ProductTypes { return repo{} }
func (Store) Colors() store.Colors             { return repo{} }
func (Store) Production() store.Production     { return repo{} }

func (Store) ApplyMigrations() error               { return nil }
func (Store) Close() error                         { return nil }
func (Store) Ping(context.Context) error           { return store.ErrUnavailable }
func (Store) Tx(context.Context) (store.Tx, error) { return nil, store.ErrUnavailable }

func (Store) WithTx(context.Context, func(store.Tx) error) error {
	return store.ErrUnavailable
}

type repo struct{}

func (repo) GetUserByEmail(context.Context, string) (domain.User, error) {
	return domain.User{}, store.ErrUnavailable
}
func (repo) CreateUser(context.Context, domain.User) error { return store.ErrUnavailable }
func (repo) IsEmpty(context.Context) (bool, error)         { return false, store.ErrUnavailable }

func (repo) ListProductTypes(context.Context) ([]domain.ProductType, error) {
	return nil, store.ErrUnavailable
}
func (repo) GetProductTypeByID(context.Context, string) (domain.ProductType, error) {
	return domain.ProductType{}, store.ErrUnavailable
}
func (repo) GetProductTypeByName(context.Context, string) (domain.ProductType, error) {
	return domain.ProductType{}, store.ErrUnavailable
}
func (repo) CreateProductType(context.Context, domain.ProductType) error { return store.ErrUnavailable }

func (repo) ListColors(context.Context) ([]domain.Color, error) { return nil, store.ErrUnavailable }
func (repo) GetColorByID(context.Context, string) (domain.Color, error) {
	return domain.Color{}, store.ErrUnavailable
}
func (repo) GetColorByName(context.Context, string) (domain.Color, error) {
	return domain.Color{}, store.ErrUnavailable
}
func (repo) CreateColor(context.Context, domain.Color) error { return store.ErrUnavailable }

func (repo) CreateRecord(context.Context, domain.ProductionRecord) error { return store.ErrUnavailable }
func (repo) ListRecords(context.Context, int, int) ([]domain.ProductionRecord, error) {
	return nil, store.ErrUnavailable
}
func (repo) CountRecords(context.Context) (int, error) { return 0, store.ErrUnavailable }
func (repo) SumQuantity(context.Context, time.Time, time.Time) (int, error) {
	return 0, store.ErrUnavailable
}
func (repo) CountProductTypesProduced(context.Context) (int, error) { return 0, store.ErrUnavailable }
func (repo) QuantityByProductType(context.Context) ([]domain.NamedQuantity, error) {
	return nil, store.ErrUnavailable
}
func (repo) QuantityByShift(context.Context) (map[domain.Shift]int, error) {
	return nil, store.ErrUnavailable
}
func (repo) QuantityByQuality(context.Context) (map[domain.Quality]int, error) {
	return nil, store.ErrUnavailable
}

var _ store.Store = Store{}
