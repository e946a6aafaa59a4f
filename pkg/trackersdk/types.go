package trackersdk

import (
	"time"

	"github.com/balco/tracker/pkg/jwtx"
)

// ============================================================================
// Errors
// ============================================================================

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	// Error is a human-readable message
	Error string `json:"error"`

	// Fields maps rejected input fields to the reason (validation errors only)
	Fields map[string]string `json:"fields,omitempty"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse represents a health check response from /livez or /readyz.
type HealthResponse struct {
	// Status is "ok" or "degraded"
	Status string `json:"status"`

	// Uptime is how long the service has been running
	Uptime string `json:"uptime"`

	Version string `json:"version"`

	// Checks is only present on /readyz
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks is the per-dependency part of a readiness response.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`

	// Fallback reports whether fallback accounts are loaded
	Fallback string `json:"fallback"`
}

// JWKSResponse is the key set session tokens can be verified against.
type JWKSResponse jwtx.JWKS

// ============================================================================
// Users and sessions
// ============================================================================

// User is the public view of an account. It never carries credentials.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// RegisterRequest is the body of POST /v1/users.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`

	// Role is "admin", "user" or "operator"; defaults to "user"
	Role string `json:"role,omitempty"`

	// Department defaults to "Genel"
	Department string `json:"department,omitempty"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// LoginRequest is the body of POST /v1/session.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token. The same token is set as an
// HttpOnly cookie.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

// SessionResponse is returned by GET /v1/session.
type SessionResponse struct {
	User User `json:"user"`
}

// ============================================================================
// Catalog
// ============================================================================

type ProductType struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProductTypesResponse struct {
	ProductTypes []ProductType `json:"product_types"`
}

type CreateProductTypeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type ProductTypeResponse struct {
	Message     string      `json:"message"`
	ProductType ProductType `json:"product_type"`
}

type Color struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// HexCode is "#RRGGBB"
	HexCode   string    `json:"hex_code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ColorsResponse struct {
	Colors []Color `json:"colors"`
}

type CreateColorRequest struct {
	Name    string `json:"name"`
	HexCode string `json:"hex_code"`
}

type ColorResponse struct {
	Message string `json:"message"`
	Color   Color  `json:"color"`
}

// ============================================================================
// Production
// ============================================================================

// ProductionRecord is one logged production run.
type ProductionRecord struct {
	ID              string `json:"id"`
	ProductTypeID   string `json:"product_type_id"`
	ProductTypeName string `json:"product_type_name"`
	ColorID         string `json:"color_id"`
	ColorName       string `json:"color_name"`
	ColorHex        string `json:"color_hex"`
	Quantity        int    `json:"quantity"`

	// Date is the production day, "YYYY-MM-DD"
	Date string `json:"date"`

	// Shift is "morning", "afternoon" or "night"
	Shift    string `json:"shift"`
	Operator string `json:"operator"`
	Notes    string `json:"notes,omitempty"`

	// Quality is "A", "B" or "C"
	Quality   string    `json:"quality"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateRecordRequest is the body of POST /v1/production.
type CreateRecordRequest struct {
	ProductTypeID string `json:"product_type_id"`
	ColorID       string `json:"color_id"`
	Quantity      int    `json:"quantity"`
	Date          string `json:"date"`
	Shift         string `json:"shift"`
	Operator      string `json:"operator"`
	Notes         string `json:"notes,omitempty"`

	// Quality defaults to "A"
	Quality string `json:"quality,omitempty"`
}

type RecordResponse struct {
	Message string           `json:"message"`
	Record  ProductionRecord `json:"record"`
}

// RecordsResponse is one page of records, newest first.
type RecordsResponse struct {
	Records []ProductionRecord `json:"records"`
	Total   int                `json:"total"`
	Page    int                `json:"page"`
	Pages   int                `json:"pages"`
}

type NamedQuantity struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// SummaryResponse aggregates all production records.
type SummaryResponse struct {
	TodayTotal       int             `json:"today_total"`
	WeeklyTotal      int             `json:"weekly_total"`
	RecordCount      int             `json:"record_count"`
	ProductTypeCount int             `json:"product_type_count"`
	ByProductType    []NamedQuantity `json:"by_product_type"`
	ByShift          map[string]int  `json:"by_shift"`
	ByQuality        map[string]int  `json:"by_quality"`
}
