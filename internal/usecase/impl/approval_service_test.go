package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"unicode/utf8"

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

// approvalServiceFixtures holds all test dependencies for approval service tests.
type approvalServiceFixtures struct {
	service          usecase.WorkflowUsecase
	txManager        *mockRepo.MockTransactionManager
	shopRepo         *mockRepo.MockShopRepository
	accountRepo      *mockRepo.MockAccountRepository
	notificationRepo *mockRepo.MockNotificationRepository
}

func createTestApprovalService(t *testing.T) approvalServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	shopRepo := mockRepo.NewMockShopRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewApprovalService(ApprovalServiceParams{
		TxManager:        txManager,
		ShopRepo:         shopRepo,
		AccountRepo:      accountRepo,
		NotificationRepo: notificationRepo,
		Logger:           logger,
	})

	return approvalServiceFixtures{
		service:          service,
		txManager:        txManager,
		shopRepo:         shopRepo,
		accountRepo:      accountRepo,
		notificationRepo: notificationRepo,
	}
}

func vendorActor() entity.Actor {
	return entity.Actor{AccountID: uuid.New(), Role: entity.RoleVendor}
}

func adminActor() entity.Actor {
	return entity.Actor{AccountID: uuid.New(), Role: entity.RoleAdmin}
}

func pendingShop(ownerID uuid.UUID) *entity.Shop {
	return &entity.Shop{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Name:     "Corner Bakery",
		Category: entity.CategoryFood,
		Status:   entity.ShopStatusPending,
	}
}

func emptyFanOut(rows []*entity.Notification) *repository.FanOutResult {
	return &repository.FanOutResult{
		Created: rows,
		Failed:  map[uuid.UUID]error{},
	}
}

func TestApprovalService_RegisterShop_Success(t *testing.T) {
	fx := createTestApprovalService(t)

	ctx := context.Background()
	actor := vendorActor()
	input := &usecase.RegisterShopInput{
		Name:     "Corner Bakery",
		Category: entity.CategoryFood,
	}

	admin := &entity.Account{ID: uuid.New(), Role: entity.RoleAdmin, Active: true}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)

			mockFactory.EXPECT().NewShopRepository().Return(mockShopRepo)
			mockShopRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Shop")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.accountRepo.EXPECT().
		ListActiveByRole(ctx, entity.RoleAdmin).
		Return([]*entity.Account{admin}, nil)

	fx.notificationRepo.EXPECT().
		CreateEach(ctx, mock.AnythingOfType("[]*entity.Notification")).
		Run(func(ctx context.Context, rows []*entity.Notification) {
			require.Len(t, rows, 1)
			assert.Equal(t, admin.ID, rows[0].RecipientID)
			assert.Equal(t, entity.NotificationShopRegistered, rows[0].Type)
			assert.True(t, rows[0].ActionRequired)
		}).
		Return(emptyFanOut(nil), nil)

	shop, err := fx.service.RegisterShop(ctx, actor, input)

	require.NoError(t, err)
	require.NotNil(t, shop)
	assert.Equal(t, actor.AccountID, shop.OwnerID)
	assert.Equal(t, entity.ShopStatusPending, shop.Status)
}

func TestApprovalService_RegisterShop_NonVendor(t *testing.T) {
	fx := createTestApprovalService(t)

	ctx := context.Background()
	input := &usecase.RegisterShopInput{Name: "Corner Bakery", Category: entity.CategoryFood}

	shop, err := fx.service.RegisterShop(ctx, adminActor(), input)

	require.Error(t, err)
	assert.Nil(t, shop)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestApprovalService_RegisterShop_InvalidInput(t *testing.T) {
	fx := createTestApprovalService(t)

	ctx := context.Background()
	actor := vendorActor()

	testCases := []struct {
		name  string
		input *usecase.RegisterShopInput
	}{
		{name: "nil input", input: nil},
		{name: "missing name", input: &usecase.RegisterShopInput{Category: entity.CategoryFood}},
		{name: "missing category", input: &usecase.RegisterShopInput{Name: "Corner Bakery"}},
		{name: "unknown category", input: &usecase.RegisterShopInput{Name: "Corner Bakery", Category: "fireworks"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			shop, err := fx.service.RegisterShop(ctx, actor, tc.input)

			require.Error(t, err)
			assert.Nil(t, shop)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestApprovalService_RegisterShop_DuplicateActiveShop(t *testing.T) {
	fx := createTestApprovalService(t)

	ctx := context.Background()
	actor := vendorActor()
	input := &usecase.RegisterShopInput{Name: "Corner Bakery", Category: entity.CategoryFood}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrDuplicateActiveShop)

	shop, err := fx.service.RegisterShop(ctx, actor, input)

	require.Error(t, err)
	assert.Nil(t, shop)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateShop))
}

func TestApprovalService_RegisterShop_FanOutFailureDoesNotFailRegistration(t *testing.T) {
	fx := createTestApprovalService(t)

	ctx := context.Background()
	actor := vendorActor()
	input := &usecase.RegisterShopInput{Name: "Corner Bakery", Category: entity.CategoryFood}

	admins := []*entity.Account{
		{ID: uuid.New(), Role: entity.RoleAdmin, Active: true},
		{ID: uuid.New(), Role: entity.RoleAdmin, Active: true},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil)

	fx.accountRepo.EXPECT().
		ListActiveByRole(ctx, entity.RoleAdmin).
		Return(admins, nil)

	// One of the two rows fails; registration must still succeed.
	fx.notificationRepo.EXPECT().
		CreateEach(ctx, mock.AnythingOfType("[]*entity.Notification")).
		Return(&repository.FanOutResult{
			Failed: map[uuid.UUID]error{admins[1].ID: errors.New("insert failed")},
		}, nil)

	shop, err := fx.service.RegisterShop(ctx, actor, input)

	require.NoError(t, err)
	assert.NotNil(t, shop)
}

func TestApprovalService_RegisterShop_NoActiveAdmins(t *testing.T) {
	fx := createTestApprovalService(t)

	ctx := context.Background()
	actor := vendorActor()
	input := &usecase.RegisterShopInput{Name: "Corner Bakery", Category: entity.CategoryFood}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil)

	// No recipients means no CreateEach call at all.
	fx.accountRepo.EXPECT().
		ListActiveByRole(ctx, entity.RoleAdmin).
		Return([]*entity.Account{}, nil)

	shop, err := fx.service.RegisterShop(ctx, actor, input)

	require.NoError(t, err)
	assert.NotNil(t, shop)
}

func TestApprovalService_ApproveShop_Success(t *testing.T) {
	fx := createTestApprovalService(t)

	ctx := context.Background()
	actor := adminActor()
	shop := pendingShop(uuid.New())

	approved := *shop
	approved.Status = entity.ShopStatusApproved

	fx.shopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)
	fx.shopRepo.EXPECT().
		UpdateStatus(ctx, shop.ID, entity.ShopStatusPending, entity.ShopStatusApproved, "").
		Return(&approved, nil)

	fx.notificationRepo.EXPECT().
		CreateEach(ctx, mock.AnythingOfType("[]*entity.Notification")).
		Run(func(ctx context.Context, rows []*entity.Notification) {
			require.Len(t, rows, 1)
			assert.Equal(t, shop.OwnerID, rows[0].RecipientID)
			assert.Equal(t, entity.NotificationShopApproved, rows[0].Type)
		}).
		Return(emptyFanOut(nil), nil)

	result, err := fx.service.ApproveShop(ctx, actor, shop.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.ShopStatusApproved, result.Status)
}

func TestApprovalService_ApproveShop_NonAdmin(t *testing.T) {
	fx := createTestApprovalService(t)

	ctx := context.Background()

	result, err := fx.service.ApproveShop(ctx, vendorActor(), uuid.New())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestApprovalService_ApproveShop_NotFound(t *testing.T) {
	fx := createTestApprovalService(t)

	ctx := context.Background()
	shopID := uuid.New()

	fx.shopRepo.EXPECT().FindByID(ctx, shopID).Return(nil, repository.ErrShopNotFound)

	result, err := fx.service.ApproveShop(ctx, adminActor(), shopID)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))
}

func TestApprovalService_ApproveShop_AlreadyProcessed(t *testing.T) {
	fx := createTestApprovalService(t)

	ctx := context.Background()
	shop := pendingShop(uuid.New())
	shop.Status = entity.ShopStatusRejected

	fx.shopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)

	result, err := fx.service.ApproveShop(ctx, adminActor(), shop.ID)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrShopAlreadyProcessed))
}

func TestApprovalService_ApproveShop_LostRace(t *testing.T) {
	fx := createTestApprovalService(t)

	ctx := context.Background()
	shop := pendingShop(uuid.New())

	// The loaded row still says pending, but the conditional update loses to a
	// concurrent decision.
	fx.shopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)
	fx.shopRepo.EXPECT().
		UpdateStatus(ctx, shop.ID, entity.ShopStatusPending, entity.ShopStatusApproved, "").
		Return(nil, repository.ErrStatusConflict)

	result, err := fx.service.ApproveShop(ctx, adminActor(), shop.ID)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrShopAlreadyProcessed))
}

func TestApprovalService_RejectShop_RecordsReason(t *testing.T) {
	fx := createTestApprovalService(t)

	ctx := context.Background()
	shop := pendingShop(uuid.New())
	reason := "incomplete contact details"

	rejected := *shop
	rejected.Status = entity.ShopStatusRejected
	rejected.RejectReason = reason

	fx.shopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)
	fx.shopRepo.EXPECT().
		UpdateStatus(ctx, shop.ID, entity.ShopStatusPending, entity.ShopStatusRejected, reason).
		Return(&rejected, nil)

	fx.notificationRepo.EXPECT().
		CreateEach(ctx, mock.AnythingOfType("[]*entity.Notification")).
		Run(func(ctx context.Context, rows []*entity.Notification) {
			require.Len(t, rows, 1)
			assert.Equal(t, entity.NotificationShopRejected, rows[0].Type)
			assert.Contains(t, rows[0].Body, reason)
		}).
		Return(emptyFanOut(nil), nil)

	output, err := fx.service.RejectShop(ctx, adminActor(), shop.ID, &usecase.RejectShopInput{Reason: reason})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, shop.ID, output.ShopID)
	assert.Equal(t, reason, output.Reason)
}

func TestApprovalService_RejectShop_NoReason(t *testing.T) {
	fx := createTestApprovalService(t)

	ctx := context.Background()
	shop := pendingShop(uuid.New())

	rejected := *shop
	rejected.Status = entity.ShopStatusRejected

	fx.shopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)
	fx.shopRepo.EXPECT().
		UpdateStatus(ctx, shop.ID, entity.ShopStatusPending, entity.ShopStatusRejected, "").
		Return(&rejected, nil)

	fx.notificationRepo.EXPECT().
		CreateEach(ctx, mock.AnythingOfType("[]*entity.Notification")).
		Return(emptyFanOut(nil), nil)

	output, err := fx.service.RejectShop(ctx, adminActor(), shop.ID, nil)

	require.NoError(t, err)
	assert.Empty(t, output.Reason)
}

func TestApprovalService_RejectShop_BoundsMultibyteReason(t *testing.T) {
	fx := createTestApprovalService(t)

	ctx := context.Background()
	shop := pendingShop(uuid.New())

	// One ASCII byte followed by two-byte runes puts the byte limit in the
	// middle of a rune; the recorded reason must back off to a rune boundary.
	reason := "a" + strings.Repeat("é", entity.NotificationBodyMaxLen)

	rejected := *shop
	rejected.Status = entity.ShopStatusRejected

	validBoundedReason := mock.MatchedBy(func(r string) bool {
		return utf8.ValidString(r) && len(r) <= entity.NotificationBodyMaxLen && strings.HasPrefix(r, "aé")
	})

	fx.shopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)
	fx.shopRepo.EXPECT().
		UpdateStatus(ctx, shop.ID, entity.ShopStatusPending, entity.ShopStatusRejected, validBoundedReason).
		Return(&rejected, nil)

	fx.notificationRepo.EXPECT().
		CreateEach(ctx, mock.AnythingOfType("[]*entity.Notification")).
		Run(func(ctx context.Context, rows []*entity.Notification) {
			require.Len(t, rows, 1)
			assert.True(t, utf8.ValidString(rows[0].Body))
		}).
		Return(emptyFanOut(nil), nil)

	output, err := fx.service.RejectShop(ctx, adminActor(), shop.ID, &usecase.RejectShopInput{Reason: reason})

	require.NoError(t, err)
	assert.True(t, utf8.ValidString(output.Reason))
	assert.LessOrEqual(t, len(output.Reason), entity.NotificationBodyMaxLen)
}

func TestApprovalService_SuspendShop_Success(t *testing.T) {
	fx := createTestApprovalService(t)

	ctx := context.Background()
	shop := pendingShop(uuid.New())
	shop.Status = entity.ShopStatusApproved

	suspended := *shop
	suspended.Status = entity.ShopStatusSuspended

	fx.shopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)
	fx.shopRepo.EXPECT().
		UpdateStatus(ctx, shop.ID, entity.ShopStatusApproved, entity.ShopStatusSuspended, "").
		Return(&suspended, nil)

	fx.notificationRepo.EXPECT().
		CreateEach(ctx, mock.AnythingOfType("[]*entity.Notification")).
		Run(func(ctx context.Context, rows []*entity.Notification) {
			require.Len(t, rows, 1)
			assert.Equal(t, entity.NotificationShopSuspended, rows[0].Type)
			assert.Equal(t, entity.PriorityUrgent, rows[0].Priority)
		}).
		Return(emptyFanOut(nil), nil)

	result, err := fx.service.SuspendShop(ctx, adminActor(), shop.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.ShopStatusSuspended, result.Status)
}

func TestApprovalService_SuspendShop_NotApproved(t *testing.T) {
	fx := createTestApprovalService(t)

	ctx := context.Background()
	shop := pendingShop(uuid.New())

	fx.shopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)

	result, err := fx.service.SuspendShop(ctx, adminActor(), shop.ID)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestApprovalService_ReinstateShop_Success(t *testing.T) {
	fx := createTestApprovalService(t)

	ctx := context.Background()
	shop := pendingShop(uuid.New())
	shop.Status = entity.ShopStatusSuspended

	reinstated := *shop
	reinstated.Status = entity.ShopStatusApproved

	fx.shopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)
	fx.shopRepo.EXPECT().
		UpdateStatus(ctx, shop.ID, entity.ShopStatusSuspended, entity.ShopStatusApproved, "").
		Return(&reinstated, nil)

	fx.notificationRepo.EXPECT().
		CreateEach(ctx, mock.AnythingOfType("[]*entity.Notification")).
		Return(emptyFanOut(nil), nil)

	result, err := fx.service.ReinstateShop(ctx, adminActor(), shop.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.ShopStatusApproved, result.Status)
}

func TestApprovalService_ReinstateShop_NotSuspended(t *testing.T) {
	fx := createTestApprovalService(t)

	ctx := context.Background()
	shop := pendingShop(uuid.New())
	shop.Status = entity.ShopStatusApproved

	fx.shopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)

	result, err := fx.service.ReinstateShop(ctx, adminActor(), shop.ID)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}
