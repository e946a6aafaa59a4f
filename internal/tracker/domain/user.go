package domain

import (
	"slices"
	"time"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleUser     Role = "user"
	RoleOperator Role = "operator"
)

// Roles lists every accepted role.
var Roles = []Role{RoleAdmin, RoleUser, RoleOperator}

func (r Role) Valid() bool { return slices.Contains(Roles, r) }

// DefaultDepartment is assigned when registration leaves it blank.
const DefaultDepartment = "Genel"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt digest
	Role         Role
	Department   string
	CreatedAt    time.Time
}

// Identity is what a successful authentication yields. It carries no
// credential material.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// IdentityOf strips the credential material from u.
func IdentityOf(u User) Identity {
	return Identity{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

// RegisteredUser is the public view returned after registration.
type RegisteredUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
