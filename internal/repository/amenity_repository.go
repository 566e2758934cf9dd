// This file defines the AmenityRepo for villa amenities. Read paths join
// the villas table so the owning villa's name travels with each record.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/royalvilla/villa-catalog-api/internal/model"
)

// AmenityRepo encapsulates all database queries related to villa amenities.
type AmenityRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewAmenityRepo constructs an AmenityRepo with the provided DB handle.
func NewAmenityRepo(db *sql.DB) *AmenityRepo {
	return &AmenityRepo{db: db}
}

// Create inserts a new amenity. On success the ID and timestamp fields
// are populated. Villa existence is validated by the handler before the
// insert; a vanished villa between check and write surfaces the FK error
// as ErrConflict.
func (r *AmenityRepo) Create(ctx context.Context, a *model.VillaAmenity) error {
	const qInsert = `INSERT INTO villa_amenities (villa_id, name, description) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, a.VillaID, a.Name, a.Description)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrConflict
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)

	const qSelect = `SELECT created_at, updated_at FROM villa_amenities WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, a.ID).Scan(&a.CreatedAt, &a.UpdatedAt)
}

// GetByID fetches an amenity with the owning villa's name joined in. It
// returns ErrAmenityNotFound when no row exists. A LEFT JOIN keeps an
// amenity readable even if its villa row is missing.
func (r *AmenityRepo) GetByID(ctx context.Context, id uint64) (*model.VillaAmenity, error) {
	const q = `SELECT a.id, a.villa_id, a.name, a.description, COALESCE(v.name, ''), a.created_at, a.updated_at
	           FROM villa_amenities a
	           LEFT JOIN villas v ON v.id = a.villa_id
	           WHERE a.id = ?`
	var a model.VillaAmenity
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&a.ID, &a.VillaID, &a.Name, &a.Description, &a.VillaName, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAmenityNotFound
		}
		return nil, err
	}
	return &a, nil
}

// List returns all amenities ordered by id, each with its villa name.
func (r *AmenityRepo) List(ctx context.Context) ([]*model.VillaAmenity, error) {
	const q = `SELECT a.id, a.villa_id, a.name, a.description, COALESCE(v.name, ''), a.created_at, a.updated_at
	           FROM villa_amenities a
	           LEFT JOIN villas v ON v.id = a.villa_id
	           ORDER BY a.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.VillaAmenity
	for rows.Next() {
		a := new(model.VillaAmenity)
		if err := rows.Scan(&a.ID, &a.VillaID, &a.Name, &a.Description, &a.VillaName, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites the mutable columns of an existing amenity and bumps
// updated_at. It returns ErrAmenityNotFound when the row does not exist
// and ErrConflict when the new villa_id violates the foreign key.
func (r *AmenityRepo) Update(ctx context.Context, a *model.VillaAmenity) error {
	const q = `UPDATE villa_amenities
	           SET villa_id = ?, name = ?, description = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, a.VillaID, a.Name, a.Description, a.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrConflict
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, a.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes an amenity by id. It returns ErrAmenityNotFound when
// the row does not exist.
func (r *AmenityRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM villa_amenities WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAmenityNotFound
	}
	return nil
}

// CountByVilla returns how many amenities reference the given villa.
// Villa deletion is refused while this count is non-zero.
func (r *AmenityRepo) CountByVilla(ctx context.Context, villaID uint64) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM villa_amenities WHERE villa_id = ?`, villaID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
