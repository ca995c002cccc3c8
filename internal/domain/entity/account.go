// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role represents the type of role an account can have in the marketplace.
type Role string

const (
	// RoleAdmin indicates a platform administrator who reviews boutique registrations.
	RoleAdmin Role = "admin"
	// RoleVendor indicates a boutique owner.
	RoleVendor Role = "vendor"
	// RoleClient indicates a regular shopper.
	RoleClient Role = "client"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleVendor, RoleClient:
		return true
	default:
		return false
	}
}

// Account is the identity record consumed by the approval workflow.
// The role is fixed at creation time; only the Active flag is ever toggled.
type Account struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Email     string    // The account's primary contact email, used as the login identifier.
	Name      string    // The account's display name.
	Role      Role      // The fixed role: admin, vendor or client.
	Active    bool      // Whether the account may act in the system. Inactive admins are excluded from fan-out.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// Actor is the authenticated caller identity handed to the workflow layer.
// It is derived from token claims, never from request bodies.
type Actor struct {
	AccountID uuid.UUID
	Role      Role
}
