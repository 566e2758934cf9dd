// This file defines the VillaRepo with CRUD and uniqueness lookups for
// villas. Villa names are unique case-insensitively; NameExists performs
// the pre-check and the unique index on villas.name catches the race
// between check and insert.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/royalvilla/villa-catalog-api/internal/model"
)

// VillaRepo encapsulates all database queries related to villas. It
// depends on a sql.DB connection pool configured at startup.
type VillaRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewVillaRepo constructs a VillaRepo with the provided DB handle. This
// allows dependency injection of the database in tests and at startup.
func NewVillaRepo(db *sql.DB) *VillaRepo {
	return &VillaRepo{db: db}
}

// Create inserts a new villa. On success the villa's ID field is
// populated with the auto-generated value and the timestamps are read
// back so callers receive a fully populated record. A duplicate name
// surfaces as ErrConflict.
func (r *VillaRepo) Create(ctx context.Context, v *model.Villa) error {
	const qInsert = `INSERT INTO villas (name, description, occupancy, rate) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, v.Name, v.Description, v.Occupancy, v.Rate)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrConflict
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)

	// Follow-up SELECT to populate default timestamp fields.
	const qSelect = `SELECT created_at, updated_at FROM villas WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, v.ID).Scan(&v.CreatedAt, &v.UpdatedAt)
}

// GetByID fetches a villa by its id. It returns ErrVillaNotFound when no
// row exists.
func (r *VillaRepo) GetByID(ctx context.Context, id uint64) (*model.Villa, error) {
	const q = `SELECT id, name, description, occupancy, rate, created_at, updated_at
	           FROM villas WHERE id = ?`
	var v model.Villa
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&v.ID, &v.Name, &v.Description, &v.Occupancy, &v.Rate, &v.CreatedAt, &v.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVillaNotFound
		}
		return nil, err
	}
	return &v, nil
}

// List returns all villas ordered by id.
func (r *VillaRepo) List(ctx context.Context) ([]*model.Villa, error) {
	const q = `SELECT id, name, description, occupancy, rate, created_at, updated_at
	           FROM villas ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Villa
	for rows.Next() {
		v := new(model.Villa)
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.Occupancy, &v.Rate, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites the mutable columns of an existing villa and bumps
// updated_at. It returns ErrVillaNotFound when no row is affected and
// ErrConflict when the new name collides with another villa.
func (r *VillaRepo) Update(ctx context.Context, v *model.Villa) error {
	const q = `UPDATE villas
	           SET name = ?, description = ?, occupancy = ?, rate = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, v.Name, v.Description, v.Occupancy, v.Rate, v.ID)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrConflict
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is also zero for a no-op update of an existing
		// row; confirm absence before reporting not found.
		if _, err := r.GetByID(ctx, v.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a villa by id. It returns ErrVillaNotFound when the row
// does not exist. Referential protection (amenities still pointing at
// the villa) is enforced by the handler via the amenity repository.
func (r *VillaRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM villas WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrVillaNotFound
	}
	return nil
}

// NameExists reports whether another villa already uses the given name,
// compared case-insensitively. excludeID skips a row (the villa being
// updated); pass 0 on create.
func (r *VillaRepo) NameExists(ctx context.Context, name string, excludeID uint64) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM villas WHERE LOWER(name) = LOWER(?) AND id <> ?)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, name, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
