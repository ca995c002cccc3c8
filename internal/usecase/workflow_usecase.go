// Package usecase declares the application-layer interfaces and their
// input/output DTOs. Delivery depends on these, never on the impl package.
package usecase

import (
	"context"

	"mall/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterShopInput is the vendor-submitted boutique registration payload.
type RegisterShopInput struct {
	Name        string               `json:"name" validate:"required,max=100"`
	Category    entity.ShopCategory  `json:"category" validate:"required"`
	Description string               `json:"description,omitempty" validate:"max=2000"`
	Contact     *entity.ContactInfo  `json:"contact,omitempty"`
	Hours       *entity.OpeningHours `json:"hours,omitempty"`
	Location    *entity.Location     `json:"location,omitempty"`
}

// RejectShopInput carries the optional reviewer reason. The text is opaque;
// it is bounded and stored, never interpreted.
type RejectShopInput struct {
	Reason string `json:"reason,omitempty" validate:"max=1000"`
}

// RejectShopOutput echoes the recorded reason back to the reviewer.
type RejectShopOutput struct {
	ShopID uuid.UUID `json:"shop_id"`
	Reason string    `json:"reason"`
}

// WorkflowUsecase is the approval workflow coordinator: the only component
// allowed to drive shop status transitions. It binds actor authorization, the
// status machine, and notification fan-out into one operation.
type WorkflowUsecase interface {
	// RegisterShop files a new boutique for the acting vendor and fans a
	// review request out to all active admins. Registration succeeds even if
	// the admin set is empty or the fan-out fails.
	RegisterShop(ctx context.Context, actor entity.Actor, input *RegisterShopInput) (*entity.Shop, error)

	// ApproveShop moves a pending shop to approved and notifies the owner.
	ApproveShop(ctx context.Context, actor entity.Actor, shopID uuid.UUID) (*entity.Shop, error)

	// RejectShop moves a pending shop to the rejected terminal state, records
	// the reason, and notifies the owner.
	RejectShop(ctx context.Context, actor entity.Actor, shopID uuid.UUID, input *RejectShopInput) (*RejectShopOutput, error)

	// SuspendShop takes an approved shop off the floor.
	SuspendShop(ctx context.Context, actor entity.Actor, shopID uuid.UUID) (*entity.Shop, error)

	// ReinstateShop returns a suspended shop to approved.
	ReinstateShop(ctx context.Context, actor entity.Actor, shopID uuid.UUID) (*entity.Shop, error)
}
