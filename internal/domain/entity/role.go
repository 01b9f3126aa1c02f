// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	"github.com/pkg/errors"
)

// Role represents the type of role an account can have in the system.
// Roles form a closed set; unknown values are rejected at parse time.
type Role string

const (
	// RoleStudent indicates a regular student account.
	RoleStudent Role = "STUDENT"
	// RoleTeacher indicates a teacher account.
	RoleTeacher Role = "TEACHER"
	// RoleAdmin indicates an administrator account.
	RoleAdmin Role = "ADMIN"
)

// ErrUnknownRole is returned by ParseRole for values outside the enumerated set.
var ErrUnknownRole = errors.New("unknown role")

// String returns the canonical string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// Lower returns the lower-cased form used in client-facing payloads.
func (r Role) Lower() string {
	return strings.ToLower(string(r))
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole matches s against the enumerated set, ignoring case, and returns
// the canonical upper-cased Role. Unknown values fail with ErrUnknownRole.
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", errors.Wrap(ErrUnknownRole, s)
	}

	return role, nil
}
