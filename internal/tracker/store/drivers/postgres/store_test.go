package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/balco/tracker/internal/tracker/domain"
	"github.com/balco/tracker/internal/tracker/store"
	"github.com/balco/tracker/internal/tracker/store/drivers/postgres"
)

func newMockStore(t *testing.T) (*postgres.Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return postgres.NewStoreFromDB(db), mock
}

var userColumns = []string{"id", "name", "email", "password_hash", "role", "department", "created_at"}

func TestUsers_GetUserByEmail(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		want    domain.User
		wantErr error
	}{
		{
			name: "found",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("FROM users")).
					WithArgs("admin@balco.com").
					WillReturnRows(sqlmock.NewRows(userColumns).
						AddRow("01J", "Admin User", "admin@balco.com", "$2a$12$x", "admin", "Genel", created))
			},
			want: domain.User{ID: "01J", Name: "Admin User", Email: "admin@balco.com", PasswordHash: "$2a$12$x",
				Role: domain.RoleAdmin, Department: "Genel", CreatedAt: created},
		},
		{
			name: "not found",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("FROM users")).
					WithArgs("admin@balco.com").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: store.ErrNotFound,
		},
		{
			name: "connection refused",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("FROM users")).
					WithArgs("admin@balco.com").
					WillReturnError(errors.New("dial tcp: connection refused"))
			},
			wantErr: errors.New("dial tcp: connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newMockStore(t)
			tt.setup(mock)

			got, err := s.Users().GetUserByEmail(ctx, "admin@balco.com")
			switch {
			case tt.wantErr == nil:
				require.NoError(t, err)
				require.Equal(t, tt.want, got)
			case errors.Is(tt.wantErr, store.ErrNotFound):
				require.ErrorIs(t, err, store.ErrNotFound)
			default:
				require.EqualError(t, err, tt.wantErr.Error())
				require.NotErrorIs(t, err, store.ErrNotFound)
			}
		})
	}
}

func TestUsers_CreateUser(t *testing.T) {
	ctx := context.Background()
	u := domain.User{ID: "01J", Name: "Ayşe", Email: "ayse@balco.com", PasswordHash: "h", Role: domain.RoleOperator,
		Department: "Genel", CreatedAt: time.Now().UTC()}

	t.Run("ok", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs(u.ID, u.Name, u.Email, u.PasswordHash, "operator", u.Department, u.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.Users().CreateUser(ctx, u))
	})

	t.Run("unique violation", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		require.ErrorIs(t, s.Users().CreateUser(ctx, u), store.ErrAlreadyExists)
	})

	t.Run("other error", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
			WillReturnError(&pgconn.PgError{Code: "57P01"})

		err := s.Users().CreateUser(ctx, u)
		require.Error(t, err)
		require.NotErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestUsers_IsEmpty(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	empty, err := s.Users().IsEmpty(context.Background())
	require.NoError(t, err)
	require.True(t, empty)
}

func TestProduction_ListAndSum(t *testing.T) {
	ctx := context.Background()
	s, mock := newMockStore(t)

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("FROM production_records r")).
		WithArgs(10, 20).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "product_type_id", "color_id", "quantity", "production_date", "shift",
			"operator", "notes", "quality", "created_by", "created_at", "updated_at",
			"name", "name", "hex_code",
		}).AddRow("r1", "pt1", "c1", 120, date, "night", "Ayşe", "", "B", "u1", now, now, "Kapak", "Mavi", "#0000FF"))

	recs, err := s.Production().ListRecords(ctx, 20, 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, domain.ShiftNight, recs[0].Shift)
	require.Equal(t, domain.QualityB, recs[0].Quality)
	require.Equal(t, "Mavi", recs[0].ColorName)
	require.Equal(t, date, recs[0].Date)

	mock.ExpectQuery(regexp.QuoteMeta("SUM(quantity)")).
		WithArgs("2025-03-03", "2025-03-10").
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(int64(450)))

	sum, err := s.Production().SumQuantity(ctx, date.AddDate(0, 0, -7), date)
	require.NoError(t, err)
	require.Equal(t, 450, sum)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY shift")).
		WillReturnRows(sqlmock.NewRows([]string{"shift", "sum"}).AddRow("morning", int64(10)).AddRow("night", int64(5)))

	byShift, err := s.Production().QuantityByShift(ctx)
	require.NoError(t, err)
	require.Equal(t, map[domain.Shift]int{domain.ShiftMorning: 10, domain.ShiftNight: 5}, byShift)
}

func TestCatalog_CreateDuplicateName(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO colors")).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := s.Colors().CreateColor(context.Background(), domain.Color{ID: "c1", Name: "Beyaz", HexCode: "#FFFFFF"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestConnectionFailuresAreUnavailable(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		err         error
		unavailable bool
	}{
		{"admin shutdown", &pgconn.PgError{Code: "57P01"}, true},
		{"connection exception", &pgconn.PgError{Code: "08006"}, true},
		{"dial refused", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, true},
		{"connection done", sql.ErrConnDone, true},
		{"undefined table", &pgconn.PgError{Code: "42P01"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newMockStore(t)
			mock.ExpectQuery(regexp.QuoteMeta("FROM product_types")).WillReturnError(tt.err)

			_, err := s.ProductTypes().ListProductTypes(ctx)
			require.Error(t, err)
			if tt.unavailable {
				require.ErrorIs(t, err, store.ErrUnavailable)
			} else {
				require.NotErrorIs(t, err, store.ErrUnavailable)
			}
		})
	}
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()

	t.Run("rollback on error", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO product_types")).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectRollback()

		boom := errors.New("boom")
		err := s.WithTx(ctx, func(tx store.Tx) error {
			require.NoError(t, tx.ProductTypes().CreateProductType(ctx, domain.ProductType{ID: "p1", Name: "Tıpa"}))
			return boom
		})
		require.ErrorIs(t, err, boom)
	})

	t.Run("commit", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO product_types")).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, s.WithTx(ctx, func(tx store.Tx) error {
			return tx.ProductTypes().CreateProductType(ctx, domain.ProductType{ID: "p1", Name: "Tıpa"})
		}))
	})
}
