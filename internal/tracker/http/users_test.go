package http_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/balco/tracker/pkg/trackersdk"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	s := newServer(t, newSQLiteStore(t))

	rec := s.do(t, request{
		method: http.MethodPost,
		path:   "/v1/users",
		body: trackersdk.RegisterRequest{
			Name:     "Ayşe Yılmaz",
			Email:    "Ayse@Balco.com",
			Password: "s3cret-pass",
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[trackersdk.RegisterResponse](t, rec)
	require.Equal(t, "user created", body.Message)
	require.NotEmpty(t, body.User.ID)
	require.Equal(t, "Ayşe Yılmaz", body.User.Name)
	require.Equal(t, "ayse@balco.com", body.User.Email)
	require.Equal(t, "user", body.User.Role)
	require.NotContains(t, rec.Body.String(), "password")
}

func TestRegister_AdminRoleIsPublic(t *testing.T) {
	s := newServer(t, newSQLiteStore(t))

	u := s.register(t, "Zeynep Demir", "zeynep@balco.com", "vardiya-9", "admin")
	require.Equal(t, "admin", u.Role)

	token := s.login(t, "zeynep@balco.com", "vardiya-9").Token
	rec := s.do(t, request{
		method: http.MethodPost,
		path:   "/v1/product-types",
		body:   trackersdk.CreateProductTypeRequest{Name: "Kova"},
		token:  token,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestRegister_Rejects(t *testing.T) {
	s := newServer(t, newSQLiteStore(t))

	tests := []struct {
		name  string
		req   trackersdk.RegisterRequest
		field string
	}{
		{"missing name", trackersdk.RegisterRequest{Email: "a@balco.com", Password: "pw"}, "name"},
		{"missing email", trackersdk.RegisterRequest{Name: "A", Password: "pw"}, "email"},
		{"malformed email", trackersdk.RegisterRequest{Name: "A", Email: "not-an-email", Password: "pw"}, "email"},
		{"missing password", trackersdk.RegisterRequest{Name: "A", Email: "a@balco.com"}, "password"},
		{"password too long", trackersdk.RegisterRequest{Name: "A", Email: "a@balco.com", Password: strings.Repeat("x", 73)}, "password"},
		{"unknown role", trackersdk.RegisterRequest{Name: "A", Email: "a@balco.com", Password: "pw", Role: "superuser"}, "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, request{method: http.MethodPost, path: "/v1/users", body: tt.req})
			require.Equal(t, http.StatusBadRequest, rec.Code)

			body := decode[trackersdk.ErrorResponse](t, rec)
			require.NotEmpty(t, body.Error)
			require.Contains(t, body.Fields, tt.field)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s := newServer(t, newSQLiteStore(t))
	s.register(t, "Ayşe Yılmaz", "ayse@balco.com", "s3cret-pass", "")

	rec := s.do(t, request{
		method: http.MethodPost,
		path:   "/v1/users",
		body:   trackersdk.RegisterRequest{Name: "Another Ayşe", Email: "AYSE@balco.com", Password: "other-pass"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "email already in use", decode[trackersdk.ErrorResponse](t, rec).Error)

	// The original password still signs in.
	s.login(t, "ayse@balco.com", "s3cret-pass")
}

func TestRegister_MalformedBody(t *testing.T) {
	s := newServer(t, newSQLiteStore(t))

	rec := s.do(t, request{method: http.MethodPost, path: "/v1/users", body: "just a string"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_DuringOutage(t *testing.T) {
	s := newOfflineServer(t)

	user := s.register(t, "Ayşe Yılmaz", "ayse@balco.com", "s3cret-pass", "operator")
	require.Equal(t, 1, s.memory.Len())

	// The account signs in from memory for the life of the process.
	login := s.login(t, "ayse@balco.com", "s3cret-pass")
	require.Equal(t, user.ID, login.User.ID)
	require.Equal(t, "operator", login.User.Role)
}
