// Package entity contains the core business objects of the project.
package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Role represents a role carried by the authenticated principal.
type Role string

const (
	// RoleProvider is held by users operating a provider account.
	RoleProvider Role = "provider"
	// RoleAdmin is held by marketplace operators.
	RoleAdmin Role = "admin"
	// RoleSystemAdmin is held by platform staff and internal service accounts.
	RoleSystemAdmin Role = "system-admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleProvider, RoleAdmin, RoleSystemAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}

// Principal is the authenticated caller of a command.
type Principal struct {
	UserID uuid.UUID
	Roles  Roles
}

// IsAdmin reports whether the principal holds an administrative role.
func (p Principal) IsAdmin() bool {
	return p.Roles.Contains(RoleAdmin) || p.Roles.Contains(RoleSystemAdmin)
}

// CanActFor reports whether the principal owns the resource or administers it.
func (p Principal) CanActFor(ownerUserID uuid.UUID) bool {
	if p.IsAdmin() {
		return true
	}

	return p.UserID != uuid.Nil && p.UserID == ownerUserID
}
