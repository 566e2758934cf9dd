package model

import "time"

// Villa represents a rentable villa listing as stored in the `villas`
// table. Each field corresponds to a column in the database. The json
// tags are omitted here because these structs are used internally by
// the repository layer; handlers use the DTO projections in
// internal/dto for wire responses.
//
// The villa name is unique across the table (case-insensitive); the
// repository enforces this both with a pre-check and by translating
// the MySQL duplicate-key error on the unique index.
//
// Fields:
//  ID          – primary key identifier of the villa.
//  Name        – unique villa name.
//  Description – free-form description of the villa.
//  Occupancy   – maximum number of guests.
//  Rate        – nightly rate.
//  CreatedAt   – timestamp of creation.
//  UpdatedAt   – timestamp of last update (zero until first update).
type Villa struct {
	ID          uint64    // villas.id
	Name        string    // villas.name
	Description string    // villas.description
	Occupancy   uint32    // villas.occupancy
	Rate        float64   // villas.rate
	CreatedAt   time.Time // villas.created_at
	UpdatedAt   time.Time // villas.updated_at
}
