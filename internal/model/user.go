package model

import "time"

// User represents an application user record as stored in the `users`
// table. Each field corresponds to a column in the database. The
// password is stored only as a bcrypt hash; the plain password never
// leaves the registration request, and no DTO projection derived from
// this struct carries the hash.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique email address (stored lower-cased).
//  Name         – display name of the user.
//  PasswordHash – bcrypt hashed password.
//  Role         – role name (e.g. "Customer" or "Admin").
//  CreatedAt    – timestamp of creation.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email
	Name         string    // users.name
	PasswordHash string    // users.password_hash
	Role         string    // users.role
	CreatedAt    time.Time // users.created_at
}

// DefaultRole is assigned to registrations that do not specify a role.
const DefaultRole = "Customer"
