// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"mall/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for shop persistence.
var (
	// ErrShopNotFound is returned when a shop is not found.
	ErrShopNotFound = errors.New("shop not found")
	// ErrDuplicateActiveShop is returned when the owner already has a shop in
	// pending or approved state.
	ErrDuplicateActiveShop = errors.New("owner already has an active shop")
	// ErrStatusConflict is returned when a conditional status update matched
	// the shop id but not the expected current status.
	ErrStatusConflict = errors.New("shop status changed concurrently")
)

// ShopPatch carries the vendor-editable metadata fields. Nil fields are left
// untouched. Status is deliberately absent; it only moves through UpdateStatus.
type ShopPatch struct {
	Name        *string
	Category    *entity.ShopCategory
	Description *string
	Contact     *entity.ContactInfo
	Hours       *entity.OpeningHours
	Location    *entity.Location
}

// ShopRepository owns durable storage and validated mutation of Shop rows.
type ShopRepository interface {
	// Create persists a new shop in pending state. Returns
	// ErrDuplicateActiveShop if the owner already has a pending or approved
	// shop.
	Create(ctx context.Context, shop *entity.Shop) error

	// FindByID retrieves a shop by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// FindByOwner retrieves all shops belonging to an owner, newest first.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Shop, error)

	// ListByStatus retrieves shops in a given lifecycle state with pagination,
	// newest first.
	ListByStatus(ctx context.Context, status entity.ShopStatus, limit, offset int) ([]*entity.Shop, error)

	// UpdateOwned applies a metadata patch iff the shop belongs to ownerID and
	// its status is still vendor-editable. The ownership and status checks run
	// inside the same conditional update. Returns ErrShopNotFound when no row
	// matched, whether the shop is absent, foreign, or frozen.
	UpdateOwned(ctx context.Context, shopID, ownerID uuid.UUID, patch ShopPatch) (*entity.Shop, error)

	// DeleteOwnedPending removes a shop iff it belongs to ownerID and is still
	// pending. Same folded not-found/forbidden semantics as UpdateOwned.
	DeleteOwnedPending(ctx context.Context, shopID, ownerID uuid.UUID) error

	// UpdateStatus performs the guarded state transition as a single
	// conditional update (WHERE id = ? AND status = from). Returns
	// ErrShopNotFound if the id is unknown and ErrStatusConflict if the row
	// exists but is no longer in the expected state. reason is persisted only
	// for transitions into the rejected state.
	UpdateStatus(ctx context.Context, shopID uuid.UUID, from, to entity.ShopStatus, reason string) (*entity.Shop, error)
}
