package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"time"

	"github.com/balco/tracker/internal/tracker/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrUnavailable is returned when the backing database cannot be reached
	// or was never configured.
	ErrUnavailable = errors.New("store: unavailable")
)

// Unavailable marks err as a failure to reach the database.
func Unavailable(err error) error {
	return errors.Join(ErrUnavailable, err)
}

// IsConnectionLost reports database/sql errors from a pool that can no longer
// serve queries. The closed-pool error is not exported, hence the text match.
func IsConnectionLost(err error) bool {
	return errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, driver.ErrBadConn) ||
		strings.Contains(err.Error(), "sql: database is closed")
}

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres, offline) implement this and expose sub-repositories so a
// transaction can only be started from the root.
type Store interface {
	Users() Users
	ProductTypes() ProductTypes
	Colors() Colors
	Production() Production

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByEmail is used during login and the registration collision check.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user. A duplicate email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type ProductTypes interface {
	// ListProductTypes returns every product type ordered by name.
	ListProductTypes(ctx context.Context) ([]domain.ProductType, error)
	GetProductTypeByID(ctx context.Context, id string) (domain.ProductType, error)
	GetProductTypeByName(ctx context.Context, name string) (domain.ProductType, error)

	// CreateProductType yields ErrAlreadyExists on a duplicate name.
	CreateProductType(ctx context.Context, pt domain.ProductType) error
}

type Colors interface {
	// ListColors returns every color ordered by name.
	ListColors(ctx context.Context) ([]domain.Color, error)
	GetColorByID(ctx context.Context, id string) (domain.Color, error)
	GetColorByName(ctx context.Context, name string) (domain.Color, error)

	// CreateColor yields ErrAlreadyExists on a duplicate name.
	CreateColor(ctx context.Context, c domain.Color) error
}

type Production interface {
	CreateRecord(ctx context.Context, r domain.ProductionRecord) error

	// ListRecords returns records newest first with product type and color
	// names joined in.
	ListRecords(ctx context.Context, offset, limit int) ([]domain.ProductionRecord, error)
	CountRecords(ctx context.Context) (int, error)

	// SumQuantity totals records whose date falls within [from, to], both
	// calendar days inclusive.
	SumQuantity(ctx context.Context, from, to time.Time) (int, error)

	// CountProductTypesProduced counts distinct product types with records.
	CountProductTypesProduced(ctx context.Context) (int, error)

	QuantityByProductType(ctx context.Context) ([]domain.NamedQuantity, error)
	QuantityByShift(ctx context.Context) (map[domain.Shift]int, error)
	QuantityByQuality(ctx context.Context) (map[domain.Quality]int, error)
}
