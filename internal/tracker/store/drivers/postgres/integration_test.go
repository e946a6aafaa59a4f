//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/balco/tracker/internal/tracker/domain"
	"github.com/balco/tracker/internal/tracker/store"
	"github.com/balco/tracker/internal/tracker/store/drivers/postgres"
	"github.com/balco/tracker/pkg/idx"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "tracker_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/tracker_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestStore_Integration(t *testing.T) {
	ctx := context.Background()
	s, err := postgres.NewStore(ctx, dsn, postgres.Options{MaxOpenConns: 4})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.ApplyMigrations(), "migrations are idempotent")

	now := time.Now().UTC().Truncate(time.Microsecond)
	u := domain.User{ID: idx.New().String(), Name: "Ayşe", Email: "ayse@balco.com", PasswordHash: "$2a$04$x",
		Role: domain.RoleOperator, Department: "Genel", CreatedAt: now}
	require.NoError(t, s.Users().CreateUser(ctx, u))

	dup := u
	dup.ID = idx.New().String()
	require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)

	got, err := s.Users().GetUserByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.True(t, now.Equal(got.CreatedAt))

	pt := domain.ProductType{ID: idx.New().String(), Name: "Düğme", CreatedAt: now, UpdatedAt: now}
	c := domain.Color{ID: idx.New().String(), Name: "Turuncu", HexCode: "#FFA500", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, s.ProductTypes().CreateProductType(ctx, pt))
	require.NoError(t, s.Colors().CreateColor(ctx, c))

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.Production().CreateRecord(ctx, domain.ProductionRecord{
		ID: idx.New().String(), ProductTypeID: pt.ID, ColorID: c.ID, Quantity: 42, Date: day,
		Shift: domain.ShiftAfternoon, Operator: "Ayşe", Quality: domain.QualityA, CreatedBy: u.ID,
		CreatedAt: now, UpdatedAt: now,
	}))

	recs, err := s.Production().ListRecords(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, day, recs[0].Date)
	require.Equal(t, "Düğme", recs[0].ProductTypeName)

	sum, err := s.Production().SumQuantity(ctx, day, day)
	require.NoError(t, err)
	require.Equal(t, 42, sum)
}
