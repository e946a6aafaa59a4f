package domain_test

import (
	"testing"

	"github.com/balco/tracker/internal/tracker/domain"
	"github.com/stretchr/testify/require"
)

func TestEnumsValid(t *testing.T) {
	require.True(t, domain.RoleOperator.Valid())
	require.False(t, domain.Role("root").Valid())
	require.True(t, domain.ShiftNight.Valid())
	require.False(t, domain.Shift("evening").Valid())
	require.True(t, domain.QualityB.Valid())
	require.False(t, domain.Quality("D").Valid())
}

func TestIdentityOfDropsHash(t *testing.T) {
	id := domain.IdentityOf(domain.User{ID: "1", Email: "a@b.c", Name: "A", Role: domain.RoleAdmin, PasswordHash: "$2a$..."})
	require.Equal(t, domain.Identity{ID: "1", Email: "a@b.c", Name: "A", Role: domain.RoleAdmin}, id)
}
