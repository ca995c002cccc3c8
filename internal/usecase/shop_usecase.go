package usecase

import (
	"context"

	"mall/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateShopInput is a partial metadata edit; nil fields are left untouched.
type UpdateShopInput struct {
	Name        *string              `json:"name,omitempty" validate:"omitempty,max=100"`
	Category    *entity.ShopCategory `json:"category,omitempty"`
	Description *string              `json:"description,omitempty" validate:"omitempty,max=2000"`
	Contact     *entity.ContactInfo  `json:"contact,omitempty"`
	Hours       *entity.OpeningHours `json:"hours,omitempty"`
	Location    *entity.Location     `json:"location,omitempty"`
}

// ListShopsInput pages through shops in one lifecycle state.
type ListShopsInput struct {
	Status entity.ShopStatus `query:"status"`
	Limit  int               `query:"limit"`
	Offset int               `query:"offset"`
}

// ShopUsecase covers the read and vendor-edit surface of the registry. Status
// never moves through here; that is the workflow coordinator's monopoly.
type ShopUsecase interface {
	// GetShop returns a shop by id.
	GetShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error)

	// ListMyShops returns the acting vendor's shops, newest first.
	ListMyShops(ctx context.Context, actor entity.Actor) ([]*entity.Shop, error)

	// ListByStatus pages shops in one state; admin-only.
	ListByStatus(ctx context.Context, actor entity.Actor, input *ListShopsInput) ([]*entity.Shop, error)

	// UpdateShop applies a vendor metadata edit while the shop is still
	// editable (pending or approved).
	UpdateShop(ctx context.Context, actor entity.Actor, shopID uuid.UUID, input *UpdateShopInput) (*entity.Shop, error)

	// WithdrawShop lets the owner delete a still-pending registration.
	WithdrawShop(ctx context.Context, actor entity.Actor, shopID uuid.UUID) error
}
