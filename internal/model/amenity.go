package model

import "time"

// VillaAmenity represents a single amenity belonging to a villa, as
// stored in the `villa_amenities` table. Every amenity references an
// existing villa; the reference is validated at create and update time
// and deleting a villa is refused while amenities still point at it.
//
// Fields:
//  ID          – primary key identifier of the amenity.
//  VillaID     – id of the owning villa (foreign key into villas).
//  Name        – amenity name (e.g. "Private Pool").
//  Description – optional description of the amenity.
//  VillaName   – name of the owning villa, populated by joined reads
//                only; not a column of villa_amenities itself.
//  CreatedAt   – timestamp of creation.
//  UpdatedAt   – timestamp of last update (zero until first update).
type VillaAmenity struct {
	ID          uint64    // villa_amenities.id
	VillaID     uint64    // villa_amenities.villa_id
	Name        string    // villa_amenities.name
	Description string    // villa_amenities.description
	VillaName   string    // villas.name (joined, read paths only)
	CreatedAt   time.Time // villa_amenities.created_at
	UpdatedAt   time.Time // villa_amenities.updated_at
}
