package trackersdk

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
)

// Client is a client for the tracker service. It performs the
// unauthenticated operations and creates Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var out RegisterResponse
	if err := c.call(ctx, http.MethodPost, "/v1/users", req, "", &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// Login exchanges credentials for a Session. Any rejection, whatever the
// cause, is reported as ErrInvalidCredentials.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var out LoginResponse
	err := c.call(ctx, http.MethodPost, "/v1/session", LoginRequest{Email: email, Password: password}, "", &out, http.StatusOK)
	if err != nil {
		if IsStatus(err, http.StatusUnauthorized) {
			return nil, errors.Join(ErrInvalidCredentials, err)
		}
		return nil, err
	}
	return &Session{client: c, token: out.Token, expiresAt: out.ExpiresAt, user: out.User}, nil
}

// NewSessionFromToken wraps a token obtained earlier.
func (c *Client) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.call(ctx, http.MethodGet, "/livez", nil, "", &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks if the service is ready. A degraded service still
// answers 200 because it can authenticate from its fallback accounts.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.call(ctx, http.MethodGet, "/readyz", nil, "", &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetJWKS fetches the public keys session tokens are signed with.
func (c *Client) GetJWKS(ctx context.Context) (*JWKSResponse, error) {
	var jwks JWKSResponse
	if err := c.call(ctx, http.MethodGet, "/.well-known/jwks.json", nil, "", &jwks, http.StatusOK); err != nil {
		return nil, err
	}
	return &jwks, nil
}
