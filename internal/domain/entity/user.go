// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core entity in the system, representing a single registered account.
// The ID is assigned by the database at creation and never changes afterwards.
type User struct {
	ID           uint64    // Numeric identifier, assigned on insert.
	Username     string    // Unique login identifier.
	Email        string    // Unique contact email.
	PasswordHash string    // Bcrypt hash of the credential; the plaintext is never stored.
	Role         Role      // One of the enumerated account roles.
	IsActive     bool      // Activity flag; true at registration, flipped only by explicit calls.
	Profile      Profile   // Optional descriptive fields.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Profile holds the optional descriptive fields of an account.
// All fields are nullable and carry no uniqueness constraints.
type Profile struct {
	FirstName  *string
	LastName   *string
	SchoolName *string
	Phone      *string
}
