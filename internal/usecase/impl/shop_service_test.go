package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mall/internal/domain/entity"
	domainerrors "mall/internal/domain/errors"
	"mall/internal/domain/repository"
	mockRepo "mall/internal/mocks/repository"
	"mall/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// shopServiceFixtures holds all test dependencies for shop service tests.
type shopServiceFixtures struct {
	service  usecase.ShopUsecase
	shopRepo *mockRepo.MockShopRepository
}

func createTestShopService(t *testing.T) shopServiceFixtures {
	shopRepo := mockRepo.NewMockShopRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return shopServiceFixtures{
		service:  NewShopService(shopRepo, logger),
		shopRepo: shopRepo,
	}
}

func TestShopService_GetShop_Success(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shop := pendingShop(uuid.New())

	fx.shopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)

	result, err := fx.service.GetShop(ctx, shop.ID)

	require.NoError(t, err)
	assert.Equal(t, shop.ID, result.ID)
}

func TestShopService_GetShop_NotFound(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shopID := uuid.New()

	fx.shopRepo.EXPECT().FindByID(ctx, shopID).Return(nil, repository.ErrShopNotFound)

	result, err := fx.service.GetShop(ctx, shopID)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))
}

func TestShopService_ListMyShops_Success(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	actor := vendorActor()
	shops := []*entity.Shop{pendingShop(actor.AccountID)}

	fx.shopRepo.EXPECT().FindByOwner(ctx, actor.AccountID).Return(shops, nil)

	result, err := fx.service.ListMyShops(ctx, actor)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestShopService_ListMyShops_NonVendor(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()

	result, err := fx.service.ListMyShops(ctx, adminActor())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestShopService_ListByStatus_Success(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	actor := adminActor()
	input := &usecase.ListShopsInput{Status: entity.ShopStatusPending, Limit: 10}

	fx.shopRepo.EXPECT().
		ListByStatus(ctx, entity.ShopStatusPending, 10, 0).
		Return([]*entity.Shop{pendingShop(uuid.New())}, nil)

	result, err := fx.service.ListByStatus(ctx, actor, input)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestShopService_ListByStatus_NonAdmin(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	input := &usecase.ListShopsInput{Status: entity.ShopStatusPending}

	result, err := fx.service.ListByStatus(ctx, vendorActor(), input)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestShopService_ListByStatus_InvalidStatus(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	input := &usecase.ListShopsInput{Status: "limbo"}

	result, err := fx.service.ListByStatus(ctx, adminActor(), input)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestShopService_ListByStatus_ClampsPaging(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	actor := adminActor()

	testCases := []struct {
		name       string
		input      *usecase.ListShopsInput
		wantLimit  int
		wantOffset int
	}{
		{
			name:      "zero limit becomes default",
			input:     &usecase.ListShopsInput{Status: entity.ShopStatusPending},
			wantLimit: defaultShopPageSize,
		},
		{
			name:      "oversized limit is capped",
			input:     &usecase.ListShopsInput{Status: entity.ShopStatusPending, Limit: 5000},
			wantLimit: maxShopPageSize,
		},
		{
			name:      "negative offset becomes zero",
			input:     &usecase.ListShopsInput{Status: entity.ShopStatusPending, Limit: 10, Offset: -5},
			wantLimit: 10,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fx.shopRepo.EXPECT().
				ListByStatus(ctx, entity.ShopStatusPending, tc.wantLimit, tc.wantOffset).
				Return([]*entity.Shop{}, nil).
				Once()

			_, err := fx.service.ListByStatus(ctx, actor, tc.input)

			require.NoError(t, err)
		})
	}
}

func TestShopService_UpdateShop_Success(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	actor := vendorActor()
	shop := pendingShop(actor.AccountID)

	newName := "Corner Bakery & Cafe"
	input := &usecase.UpdateShopInput{Name: &newName}

	updated := *shop
	updated.Name = newName

	fx.shopRepo.EXPECT().
		UpdateOwned(ctx, shop.ID, actor.AccountID, mock.AnythingOfType("repository.ShopPatch")).
		Run(func(ctx context.Context, shopID uuid.UUID, ownerID uuid.UUID, patch repository.ShopPatch) {
			require.NotNil(t, patch.Name)
			assert.Equal(t, newName, *patch.Name)
		}).
		Return(&updated, nil)

	result, err := fx.service.UpdateShop(ctx, actor, shop.ID, input)

	require.NoError(t, err)
	assert.Equal(t, newName, result.Name)
}

func TestShopService_UpdateShop_InvalidInput(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	actor := vendorActor()
	emptyName := ""
	badCategory := entity.ShopCategory("fireworks")

	testCases := []struct {
		name  string
		input *usecase.UpdateShopInput
	}{
		{name: "nil input", input: nil},
		{name: "emptied name", input: &usecase.UpdateShopInput{Name: &emptyName}},
		{name: "unknown category", input: &usecase.UpdateShopInput{Category: &badCategory}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := fx.service.UpdateShop(ctx, actor, uuid.New(), tc.input)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestShopService_UpdateShop_NotOwnedOrNotEditable(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	actor := vendorActor()
	shopID := uuid.New()
	newName := "Corner Bakery & Cafe"

	// Missing, foreign, and frozen shops all surface as the same not-found.
	fx.shopRepo.EXPECT().
		UpdateOwned(ctx, shopID, actor.AccountID, mock.AnythingOfType("repository.ShopPatch")).
		Return(nil, repository.ErrShopNotFound)

	result, err := fx.service.UpdateShop(ctx, actor, shopID, &usecase.UpdateShopInput{Name: &newName})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrShopNotOwned))
}

func TestShopService_UpdateShop_NonVendor(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	newName := "Corner Bakery & Cafe"

	result, err := fx.service.UpdateShop(ctx, adminActor(), uuid.New(), &usecase.UpdateShopInput{Name: &newName})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestShopService_WithdrawShop_Success(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	actor := vendorActor()
	shopID := uuid.New()

	fx.shopRepo.EXPECT().DeleteOwnedPending(ctx, shopID, actor.AccountID).Return(nil)

	err := fx.service.WithdrawShop(ctx, actor, shopID)

	require.NoError(t, err)
}

func TestShopService_WithdrawShop_OwnedButNotPending(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	actor := vendorActor()
	shop := pendingShop(actor.AccountID)
	shop.Status = entity.ShopStatusApproved

	fx.shopRepo.EXPECT().
		DeleteOwnedPending(ctx, shop.ID, actor.AccountID).
		Return(repository.ErrShopNotFound)
	fx.shopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)

	err := fx.service.WithdrawShop(ctx, actor, shop.ID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestShopService_WithdrawShop_ForeignShop(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	actor := vendorActor()
	shop := pendingShop(uuid.New())

	fx.shopRepo.EXPECT().
		DeleteOwnedPending(ctx, shop.ID, actor.AccountID).
		Return(repository.ErrShopNotFound)
	fx.shopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)

	err := fx.service.WithdrawShop(ctx, actor, shop.ID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrShopNotOwned))
}

func TestShopService_WithdrawShop_MissingShop(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	actor := vendorActor()
	shopID := uuid.New()

	fx.shopRepo.EXPECT().
		DeleteOwnedPending(ctx, shopID, actor.AccountID).
		Return(repository.ErrShopNotFound)
	fx.shopRepo.EXPECT().FindByID(ctx, shopID).Return(nil, repository.ErrShopNotFound)

	err := fx.service.WithdrawShop(ctx, actor, shopID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrShopNotOwned))
}

func TestShopService_WithdrawShop_NonVendor(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()

	err := fx.service.WithdrawShop(ctx, adminActor(), uuid.New())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
