package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/royalvilla/villa-catalog-api/internal/model"
)

// UserRepo encapsulates all database queries related to users. Emails
// are normalized to lower case before every read and write so the
// uniqueness guarantee is case-insensitive.
type UserRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewUserRepo constructs a UserRepo with the provided DB handle.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a user record and populates its ID and creation
// timestamp. The caller provides an already-hashed password. A racing
// registration with the same email surfaces as ErrEmailExists via the
// unique index on users.email.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	u.Email = normalizeEmail(u.Email)
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (email, name, password_hash, role) VALUES (?, ?, ?, ?)`,
		u.Email, u.Name, u.PasswordHash, u.Role)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrEmailExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = uint64(id)

	return r.db.QueryRowContext(ctx,
		`SELECT created_at FROM users WHERE id = ?`, u.ID).Scan(&u.CreatedAt)
}

// GetByEmail fetches a user by normalized email. sql.ErrNoRows is
// passed through so the auth service can fold it into its generic
// invalid-credentials error.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, name, password_hash, role, created_at FROM users WHERE email = ? LIMIT 1`,
		normalizeEmail(email)).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// EmailExists reports whether a user with the given email already
// exists, compared case-insensitively. It is a pure read with no side
// effects.
func (r *UserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`,
		normalizeEmail(email)).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// IsNotFound reports whether err means a lookup found no row.
func IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows) ||
		errors.Is(err, ErrVillaNotFound) ||
		errors.Is(err, ErrAmenityNotFound)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
