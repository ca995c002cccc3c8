// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	deliverycontext "mall/internal/delivery/context"
	"mall/internal/domain/entity"
	domainerrors "mall/internal/domain/errors"
	"mall/internal/domain/repository"
	"mall/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// approvalService implements the WorkflowUsecase interface. It is the only
// writer of shop status and the only producer of notification rows.
type approvalService struct {
	txManager        repository.TransactionManager
	shopRepo         repository.ShopRepository
	accountRepo      repository.AccountRepository
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// ApprovalServiceParams holds dependencies for the approval service, injected by Fx.
type ApprovalServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	ShopRepo         repository.ShopRepository
	AccountRepo      repository.AccountRepository
	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NewApprovalService is the constructor for approvalService.
func NewApprovalService(params ApprovalServiceParams) usecase.WorkflowUsecase {
	return &approvalService{
		txManager:        params.TxManager,
		shopRepo:         params.ShopRepo,
		accountRepo:      params.AccountRepo,
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *approvalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterShop files a new boutique for the acting vendor and fans the review
// request out to every active admin. The fan-out is best-effort: once the shop
// row is committed, no notification failure may fail the registration.
func (srv *approvalService) RegisterShop(ctx context.Context, actor entity.Actor, input *usecase.RegisterShopInput) (*entity.Shop, error) {
	if actor.Role != entity.RoleVendor {
		return nil, domainerrors.ErrForbidden.WrapMessage("only vendors can register a shop")
	}
	if err := validateRegisterShopInput(input); err != nil {
		return nil, err
	}

	shop := buildNewShop(actor.AccountID, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewShopRepository().Create(ctx, shop)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateActiveShop) {
			return nil, domainerrors.ErrDuplicateShop.WrapMessage("a pending or approved shop already exists for this vendor")
		}

		return nil, errors.Wrap(err, "failed to create shop")
	}

	srv.log(ctx).Info("Shop registered",
		slog.Any("shopID", shop.ID),
		slog.Any("ownerID", shop.OwnerID),
		slog.String("category", shop.Category.String()))

	srv.notifyAdmins(ctx, shop)

	return shop, nil
}

// ApproveShop moves a pending shop to approved and notifies the owner.
func (srv *approvalService) ApproveShop(ctx context.Context, actor entity.Actor, shopID uuid.UUID) (*entity.Shop, error) {
	shop, err := srv.decide(ctx, actor, shopID, entity.ShopStatusPending, entity.ShopStatusApproved, "")
	if err != nil {
		return nil, err
	}

	srv.notifyOwner(ctx, shop, entity.NotificationTemplate{
		Type:     entity.NotificationShopApproved,
		Title:    "Your boutique has been approved",
		Body:     fmt.Sprintf("%q is now open for business.", shop.Name),
		Related:  &entity.RelatedEntity{Kind: "shop", ID: shop.ID},
		Priority: entity.PriorityHigh,
	})

	return shop, nil
}

// RejectShop moves a pending shop into the rejected terminal state, records
// the reviewer's reason, and notifies the owner.
func (srv *approvalService) RejectShop(ctx context.Context, actor entity.Actor, shopID uuid.UUID, input *usecase.RejectShopInput) (*usecase.RejectShopOutput, error) {
	reason := ""
	if input != nil {
		reason = boundReason(input.Reason)
	}

	shop, err := srv.decide(ctx, actor, shopID, entity.ShopStatusPending, entity.ShopStatusRejected, reason)
	if err != nil {
		return nil, err
	}

	body := fmt.Sprintf("%q was not approved.", shop.Name)
	if reason != "" {
		body = fmt.Sprintf("%q was not approved: %s", shop.Name, reason)
	}

	srv.notifyOwner(ctx, shop, entity.NotificationTemplate{
		Type:     entity.NotificationShopRejected,
		Title:    "Your boutique registration was rejected",
		Body:     body,
		Related:  &entity.RelatedEntity{Kind: "shop", ID: shop.ID},
		Priority: entity.PriorityHigh,
	})

	return &usecase.RejectShopOutput{ShopID: shop.ID, Reason: reason}, nil
}

// SuspendShop takes an approved shop off the floor.
func (srv *approvalService) SuspendShop(ctx context.Context, actor entity.Actor, shopID uuid.UUID) (*entity.Shop, error) {
	shop, err := srv.decide(ctx, actor, shopID, entity.ShopStatusApproved, entity.ShopStatusSuspended, "")
	if err != nil {
		return nil, err
	}

	srv.notifyOwner(ctx, shop, entity.NotificationTemplate{
		Type:     entity.NotificationShopSuspended,
		Title:    "Your boutique has been suspended",
		Body:     fmt.Sprintf("%q is temporarily closed pending review.", shop.Name),
		Related:  &entity.RelatedEntity{Kind: "shop", ID: shop.ID},
		Priority: entity.PriorityUrgent,
	})

	return shop, nil
}

// ReinstateShop returns a suspended shop to approved.
func (srv *approvalService) ReinstateShop(ctx context.Context, actor entity.Actor, shopID uuid.UUID) (*entity.Shop, error) {
	shop, err := srv.decide(ctx, actor, shopID, entity.ShopStatusSuspended, entity.ShopStatusApproved, "")
	if err != nil {
		return nil, err
	}

	srv.notifyOwner(ctx, shop, entity.NotificationTemplate{
		Type:     entity.NotificationShopReinstated,
		Title:    "Your boutique has been reinstated",
		Body:     fmt.Sprintf("%q is open for business again.", shop.Name),
		Related:  &entity.RelatedEntity{Kind: "shop", ID: shop.ID},
		Priority: entity.PriorityHigh,
	})

	return shop, nil
}

// decide runs one admin-gated status transition. The from-status check happens
// twice: once against the loaded row for a friendly error, and again inside
// the conditional update so concurrent deciders cannot both win.
func (srv *approvalService) decide(ctx context.Context, actor entity.Actor, shopID uuid.UUID, from, to entity.ShopStatus, reason string) (*entity.Shop, error) {
	if actor.Role != entity.RoleAdmin {
		return nil, domainerrors.ErrForbidden.WrapMessage("only admins can decide shop transitions")
	}

	current, err := srv.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound.WrapMessage("shop does not exist")
		}

		return nil, errors.Wrap(err, "failed to load shop for decision")
	}

	if current.Status != from {
		return nil, srv.conflictError(from, current.Status)
	}

	updated, err := srv.shopRepo.UpdateStatus(ctx, shopID, from, to, reason)
	if err != nil {
		if errors.Is(err, repository.ErrStatusConflict) || errors.Is(err, repository.ErrShopNotFound) {
			// Lost the race against a concurrent decision.
			return nil, srv.conflictError(from, "")
		}

		return nil, errors.Wrap(err, "failed to transition shop status")
	}

	srv.log(ctx).Info("Shop status transitioned",
		slog.Any("shopID", shopID),
		slog.Any("adminID", actor.AccountID),
		slog.String("from", from.String()),
		slog.String("to", to.String()))

	return updated, nil
}

func (srv *approvalService) conflictError(from, observed entity.ShopStatus) error {
	if from == entity.ShopStatusPending {
		msg := "shop is no longer pending"
		if observed != "" {
			msg = fmt.Sprintf("shop is %s, not pending", observed)
		}

		return domainerrors.ErrShopAlreadyProcessed.WrapMessage(msg)
	}

	return domainerrors.ErrInvalidTransition.WrapMessage(
		fmt.Sprintf("shop is not in the %s state", from))
}

// notifyAdmins fans the registration event out to all active admins. An empty
// admin set is logged and tolerated; registration never fails on fan-out.
func (srv *approvalService) notifyAdmins(ctx context.Context, shop *entity.Shop) {
	admins, err := srv.accountRepo.ListActiveByRole(ctx, entity.RoleAdmin)
	if err != nil {
		srv.log(ctx).Error("Failed to enumerate admins for registration fan-out",
			slog.Any("shopID", shop.ID), slog.Any("error", err))

		return
	}

	if len(admins) == 0 {
		srv.log(ctx).Warn("No active admins to notify about shop registration",
			slog.Any("shopID", shop.ID))

		return
	}

	template := entity.NotificationTemplate{
		Type:           entity.NotificationShopRegistered,
		Title:          "New boutique registration",
		Body:           fmt.Sprintf("%q (%s) is waiting for review.", shop.Name, shop.Category),
		Related:        &entity.RelatedEntity{Kind: "shop", ID: shop.ID},
		Priority:       entity.PriorityMedium,
		ActionRequired: true,
		ActionType:     entity.ActionReviewShop,
		ActionURL:      fmt.Sprintf("/admin/shops/%s", shop.ID),
	}

	rows := make([]*entity.Notification, 0, len(admins))
	for _, admin := range admins {
		rows = append(rows, template.Build(admin.ID, admin.Role))
	}

	srv.deliver(ctx, rows)
}

// notifyOwner sends a single decision event to the shop owner.
func (srv *approvalService) notifyOwner(ctx context.Context, shop *entity.Shop, template entity.NotificationTemplate) {
	srv.deliver(ctx, []*entity.Notification{template.Build(shop.OwnerID, entity.RoleVendor)})
}

// deliver writes notification rows, swallowing failures. The committed state
// transition is the source of truth; delivery is best-effort.
func (srv *approvalService) deliver(ctx context.Context, rows []*entity.Notification) {
	result, err := srv.notificationRepo.CreateEach(ctx, rows)
	if err != nil {
		srv.log(ctx).Error("Notification fan-out failed entirely", slog.Any("error", err))

		return
	}

	for recipientID, rowErr := range result.Failed {
		srv.log(ctx).Error("Notification row insert failed",
			slog.Any("recipientID", recipientID), slog.Any("error", rowErr))
	}
}

func validateRegisterShopInput(input *usecase.RegisterShopInput) error {
	if input == nil || input.Name == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("name is required")
	}
	if input.Category == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("category is required")
	}
	if !input.Category.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage(
			fmt.Sprintf("unknown category %q", input.Category))
	}

	return nil
}

func buildNewShop(ownerID uuid.UUID, input *usecase.RegisterShopInput) *entity.Shop {
	shop := &entity.Shop{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Status:      entity.ShopStatusPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if input.Contact != nil {
		shop.Contact = *input.Contact
	}
	if input.Hours != nil {
		shop.Hours = *input.Hours
	}
	if input.Location != nil {
		shop.Location = *input.Location
	}

	return shop
}

// boundReason caps the reviewer's free-text reason at the notification body
// limit, backing off to a rune boundary so the stored text stays valid UTF-8.
func boundReason(reason string) string {
	if len(reason) <= entity.NotificationBodyMaxLen {
		return reason
	}

	cut := entity.NotificationBodyMaxLen
	for cut > 0 && !utf8.RuneStart(reason[cut]) {
		cut--
	}

	return reason[:cut]
}
