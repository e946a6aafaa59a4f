package trackersdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Session is a signed-in user. It is safe for concurrent use; the token is
// never refreshed.
type Session struct {
	client    *Client
	token     string
	expiresAt time.Time
	user      User
}

// Token returns the session token.
func (s *Session) Token() string { return s.token }

// ExpiresAt is zero for sessions built with NewSessionFromToken.
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

// User is the account the session was issued for, as returned by Login.
func (s *Session) User() User { return s.user }

func (s *Session) call(ctx context.Context, method, path string, body, target any, expectedStatus int) error {
	return s.client.call(ctx, method, path, body, s.token, target, expectedStatus)
}

// Me returns the identity bound into the session token.
func (s *Session) Me(ctx context.Context) (*User, error) {
	var out SessionResponse
	if err := s.call(ctx, http.MethodGet, "/v1/session", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// Logout clears the session cookie server side. The token itself stays
// valid until it expires; drop it.
func (s *Session) Logout(ctx context.Context) error {
	return s.call(ctx, http.MethodDelete, "/v1/session", nil, nil, http.StatusNoContent)
}

func (s *Session) ListProductTypes(ctx context.Context) ([]ProductType, error) {
	var out ProductTypesResponse
	if err := s.call(ctx, http.MethodGet, "/v1/product-types", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.ProductTypes, nil
}

// CreateProductType requires the admin role.
func (s *Session) CreateProductType(ctx context.Context, req CreateProductTypeRequest) (*ProductType, error) {
	var out ProductTypeResponse
	if err := s.call(ctx, http.MethodPost, "/v1/product-types", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out.ProductType, nil
}

func (s *Session) ListColors(ctx context.Context) ([]Color, error) {
	var out ColorsResponse
	if err := s.call(ctx, http.MethodGet, "/v1/colors", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Colors, nil
}

// CreateColor requires the admin role.
func (s *Session) CreateColor(ctx context.Context, req CreateColorRequest) (*Color, error) {
	var out ColorResponse
	if err := s.call(ctx, http.MethodPost, "/v1/colors", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out.Color, nil
}

func (s *Session) CreateRecord(ctx context.Context, req CreateRecordRequest) (*ProductionRecord, error) {
	var out RecordResponse
	if err := s.call(ctx, http.MethodPost, "/v1/production", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out.Record, nil
}

// ListRecords fetches one page of records. Zero page or limit leaves the
// server default.
func (s *Session) ListRecords(ctx context.Context, page, limit int) (*RecordsResponse, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", fmt.Sprint(page))
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}
	path := "/v1/production"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out RecordsResponse
	if err := s.call(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) Summary(ctx context.Context) (*SummaryResponse, error) {
	var out SummaryResponse
	if err := s.call(ctx, http.MethodGet, "/v1/production/summary", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
