// Package repository contains the data-access layer over MySQL. This file
// defines sentinel error values shared across repositories so that the
// handler layer can map failures onto the right envelope without string
// matching. ErrVillaNotFound and ErrAmenityNotFound become 404 responses,
// ErrEmailExists and ErrConflict become 409.
package repository

import (
	"errors"
	"strings"
)

// ErrVillaNotFound is returned when a villa id does not resolve to a row.
var ErrVillaNotFound = errors.New("villa not found")

// ErrAmenityNotFound is returned when an amenity id does not resolve to a row.
var ErrAmenityNotFound = errors.New("villa amenity not found")

// ErrEmailExists is returned when a registration collides with an
// existing email (case-insensitive).
var ErrEmailExists = errors.New("email already exists")

// ErrConflict is returned when a write collides with existing state,
// such as a duplicate villa name or deleting a villa that still has
// amenities. Handlers translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// isDuplicateKey reports whether err is the MySQL duplicate-entry error
// (1062). The unique indexes on villas.name and users.email backstop the
// check-then-write sequence, so a racing insert still surfaces as a
// conflict instead of a 500.
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}

// isForeignKeyViolation reports whether err is a MySQL foreign-key error
// (1452 on insert/update). The FK from villa_amenities.villa_id covers
// the window between the handler's villa-existence check and the write.
func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1452")
}
