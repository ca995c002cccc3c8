package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "mall/internal/delivery/context"
	"mall/internal/domain/entity"
	domainerrors "mall/internal/domain/errors"
	"mall/internal/domain/repository"
	"mall/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultShopPageSize = 20
	maxShopPageSize     = 100
)

// shopService implements the ShopUsecase interface: the read and vendor-edit
// surface of the shop registry.
type shopService struct {
	shopRepo repository.ShopRepository
	logger   *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(shopRepo repository.ShopRepository, logger *slog.Logger) usecase.ShopUsecase {
	return &shopService{
		shopRepo: shopRepo,
		logger:   logger,
	}
}

func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetShop returns a shop by id.
func (srv *shopService) GetShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error) {
	shop, err := srv.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound.WrapMessage("shop does not exist")
		}

		return nil, errors.Wrap(err, "failed to load shop")
	}

	return shop, nil
}

// ListMyShops returns the acting vendor's shops, newest first.
func (srv *shopService) ListMyShops(ctx context.Context, actor entity.Actor) ([]*entity.Shop, error) {
	if actor.Role != entity.RoleVendor {
		return nil, domainerrors.ErrForbidden.WrapMessage("only vendors own shops")
	}

	shops, err := srv.shopRepo.FindByOwner(ctx, actor.AccountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops by owner")
	}

	return shops, nil
}

// ListByStatus pages shops in one lifecycle state; admin-only.
func (srv *shopService) ListByStatus(ctx context.Context, actor entity.Actor, input *usecase.ListShopsInput) ([]*entity.Shop, error) {
	if actor.Role != entity.RoleAdmin {
		return nil, domainerrors.ErrForbidden.WrapMessage("only admins can list shops by status")
	}

	if input == nil || !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("a valid status filter is required")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultShopPageSize
	}
	if limit > maxShopPageSize {
		limit = maxShopPageSize
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	shops, err := srv.shopRepo.ListByStatus(ctx, input.Status, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops by status")
	}

	return shops, nil
}

// UpdateShop applies a vendor metadata edit. Ownership and editability are
// folded into one conditional update in the repository, so a concurrent
// approval or suspension cannot interleave with a stale write.
func (srv *shopService) UpdateShop(ctx context.Context, actor entity.Actor, shopID uuid.UUID, input *usecase.UpdateShopInput) (*entity.Shop, error) {
	if actor.Role != entity.RoleVendor {
		return nil, domainerrors.ErrForbidden.WrapMessage("only the owning vendor can edit a shop")
	}
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("empty update")
	}
	if input.Category != nil && !input.Category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(
			fmt.Sprintf("unknown category %q", *input.Category))
	}
	if input.Name != nil && *input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name cannot be emptied")
	}

	patch := repository.ShopPatch{
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Contact:     input.Contact,
		Hours:       input.Hours,
		Location:    input.Location,
	}

	shop, err := srv.shopRepo.UpdateOwned(ctx, shopID, actor.AccountID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotOwned.WrapMessage("no editable shop with this id for this vendor")
		}

		return nil, errors.Wrap(err, "failed to update shop")
	}

	srv.log(ctx).Debug("Shop metadata updated", slog.Any("shopID", shopID), slog.Any("ownerID", actor.AccountID))

	return shop, nil
}

// WithdrawShop lets the owner delete a still-pending registration.
func (srv *shopService) WithdrawShop(ctx context.Context, actor entity.Actor, shopID uuid.UUID) error {
	if actor.Role != entity.RoleVendor {
		return domainerrors.ErrForbidden.WrapMessage("only the owning vendor can withdraw a shop")
	}

	if err := srv.shopRepo.DeleteOwnedPending(ctx, shopID, actor.AccountID); err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return srv.withdrawFailure(ctx, actor, shopID)
		}

		return errors.Wrap(err, "failed to withdraw shop")
	}

	srv.log(ctx).Info("Shop registration withdrawn", slog.Any("shopID", shopID), slog.Any("ownerID", actor.AccountID))

	return nil
}

// withdrawFailure splits the conditional delete's zero-rows outcome: the
// owner of a shop that has already left pending gets the state error, while
// a missing or foreign shop stays a plain not-found.
func (srv *shopService) withdrawFailure(ctx context.Context, actor entity.Actor, shopID uuid.UUID) error {
	shop, err := srv.shopRepo.FindByID(ctx, shopID)
	if err == nil && shop.OwnerID == actor.AccountID {
		return domainerrors.ErrInvalidTransition.WrapMessage("only a pending registration can be withdrawn")
	}

	return domainerrors.ErrShopNotOwned.WrapMessage("no pending shop with this id for this vendor")
}
