// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShopStatus represents the lifecycle state of a boutique.
type ShopStatus string

const (
	// ShopStatusPending indicates a boutique awaiting admin review.
	ShopStatusPending ShopStatus = "pending"
	// ShopStatusApproved indicates a boutique cleared for trading.
	ShopStatusApproved ShopStatus = "approved"
	// ShopStatusRejected is the terminal state of a failed review. The row is
	// retained for auditability and cleaned up by the retention sweeper.
	ShopStatusRejected ShopStatus = "rejected"
	// ShopStatusSuspended indicates an approved boutique taken off the floor by an admin.
	ShopStatusSuspended ShopStatus = "suspended"
)

// String returns the string representation of the ShopStatus.
func (s ShopStatus) String() string {
	return string(s)
}

// IsValid checks if the ShopStatus is a valid value.
func (s ShopStatus) IsValid() bool {
	switch s {
	case ShopStatusPending, ShopStatusApproved, ShopStatusRejected, ShopStatusSuspended:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status machine permits moving from s to next.
// pending -> approved | rejected, approved -> suspended, suspended -> approved.
func (s ShopStatus) CanTransitionTo(next ShopStatus) bool {
	switch s {
	case ShopStatusPending:
		return next == ShopStatusApproved || next == ShopStatusRejected
	case ShopStatusApproved:
		return next == ShopStatusSuspended
	case ShopStatusSuspended:
		return next == ShopStatusApproved
	default:
		return false
	}
}

// VendorEditable reports whether the owning vendor may still edit shop metadata.
// Suspended and rejected boutiques are frozen.
func (s ShopStatus) VendorEditable() bool {
	return s == ShopStatusPending || s == ShopStatusApproved
}

// ActiveConsideration reports whether the shop counts against the
// one-active-shop-per-vendor invariant.
func (s ShopStatus) ActiveConsideration() bool {
	return s == ShopStatusPending || s == ShopStatusApproved
}

// ShopCategory is the fixed category set a boutique registers under.
type ShopCategory string

const (
	CategoryFashion     ShopCategory = "fashion"
	CategoryFood        ShopCategory = "food"
	CategoryElectronics ShopCategory = "electronics"
	CategoryBeauty      ShopCategory = "beauty"
	CategoryHome        ShopCategory = "home"
	CategoryServices    ShopCategory = "services"
)

// IsValid checks if the ShopCategory is a valid value.
func (c ShopCategory) IsValid() bool {
	switch c {
	case CategoryFashion, CategoryFood, CategoryElectronics, CategoryBeauty, CategoryHome, CategoryServices:
		return true
	default:
		return false
	}
}

// String returns the string representation of the ShopCategory.
func (c ShopCategory) String() string {
	return string(c)
}

// ContactInfo holds how clients reach the boutique.
type ContactInfo struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
}

// OpeningHours maps a weekday name to an opening interval, e.g. "mon" -> "09:00-18:00".
// An absent day means closed. The workflow treats the table as opaque metadata.
type OpeningHours map[string]string

// Location is the boutique's spot inside the mall.
type Location struct {
	Floor string `json:"floor,omitempty"`
	Unit  string `json:"unit,omitempty"`
}

// RatingAggregate is the running review summary. The approval workflow passes
// it through untouched; it is maintained by the review subsystem.
type RatingAggregate struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Shop is a boutique owned by exactly one vendor account.
type Shop struct {
	ID           uuid.UUID       // The Global Unique Identifier (GUID) for the shop.
	OwnerID      uuid.UUID       // The vendor account that owns this boutique.
	Name         string          // The boutique's display name.
	Category     ShopCategory    // One of the fixed category set.
	Description  string          // Free-form description shown to clients.
	Contact      ContactInfo     // Contact details.
	Hours        OpeningHours    // Opening-hours table.
	Location     Location        // Spot inside the mall.
	Status       ShopStatus      // Lifecycle state, mutated only through guarded transitions.
	RejectReason string          // Reason recorded when the boutique was rejected, empty otherwise.
	Rating       RatingAggregate // Opaque pass-through review summary.
	CreatedAt    time.Time       // Timestamp of when the registration was submitted.
	UpdatedAt    time.Time       // Timestamp of the last modification.
}
