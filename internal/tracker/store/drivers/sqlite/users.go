package sqlite

import (
	"context"

	"github.com/balco/tracker/internal/tracker/domain"
)

type usersRepo struct {
	db DBTX
}

const getUserByEmail = `
SELECT id, name, email, password_hash, role, department, created_at
FROM users
WHERE email = ?`

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx, getUserByEmail, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Department, &u.CreatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

const createUser = `
INSERT INTO users (id, name, email, password_hash, role, department, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, createUser,
		u.ID, u.Name, u.Email, u.PasswordHash, string(u.Role), u.Department, u.CreatedAt.UTC(),
	)
	return mapWriteErr(err)
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return false, mapErr(err)
	}
	return count == 0, nil
}
