package handler

import (
	"context"
	"log/slog"
	"net/http"

	"mall/internal/delivery/http/middleware"
	"mall/internal/delivery/http/response"
	"mall/internal/domain/entity"
	domainerrors "mall/internal/domain/errors"
	"mall/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ShopHandler holds dependencies for boutique registry and approval handlers.
// Reads and vendor edits go through the shop usecase; every status change goes
// through the workflow coordinator.
type ShopHandler struct {
	shopUC     usecase.ShopUsecase
	workflowUC usecase.WorkflowUsecase
	logger     *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler, injected by Fx.
func NewShopHandler(shopUC usecase.ShopUsecase, workflowUC usecase.WorkflowUsecase, logger *slog.Logger) *ShopHandler {
	return &ShopHandler{
		shopUC:     shopUC,
		workflowUC: workflowUC,
		logger:     logger,
	}
}

// Register handles a vendor's boutique registration.
func (h *ShopHandler) Register(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var input usecase.RegisterShopInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop registration input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	shop, err := h.workflowUC.RegisterShop(c.Request().Context(), actor, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, shop, "Shop registered and queued for review")
}

// Get returns one shop by id.
func (h *ShopHandler) Get(c echo.Context) error {
	shopID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	shop, err := h.shopUC.GetShop(c.Request().Context(), shopID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop, "")
}

// ListMine returns the acting vendor's shops.
func (h *ShopHandler) ListMine(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	shops, err := h.shopUC.ListMyShops(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shops, "")
}

// Update applies a vendor metadata edit.
func (h *ShopHandler) Update(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	shopID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateShopInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop update input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	shop, err := h.shopUC.UpdateShop(c.Request().Context(), actor, shopID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop, "Shop updated")
}

// Withdraw deletes the acting vendor's still-pending registration.
func (h *ShopHandler) Withdraw(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	shopID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.shopUC.WithdrawShop(c.Request().Context(), actor, shopID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"shop_id": shopID.String()}, "Shop registration withdrawn")
}

// ListByStatus pages shops in one lifecycle state for admin review queues.
func (h *ShopHandler) ListByStatus(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var input usecase.ListShopsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop listing input")
	}

	shops, err := h.shopUC.ListByStatus(c.Request().Context(), actor, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shops, "")
}

// Approve moves a pending shop to approved.
func (h *ShopHandler) Approve(c echo.Context) error {
	return h.decide(c, h.workflowUC.ApproveShop, "Shop approved")
}

// Suspend takes an approved shop off the floor.
func (h *ShopHandler) Suspend(c echo.Context) error {
	return h.decide(c, h.workflowUC.SuspendShop, "Shop suspended")
}

// Reinstate returns a suspended shop to approved.
func (h *ShopHandler) Reinstate(c echo.Context) error {
	return h.decide(c, h.workflowUC.ReinstateShop, "Shop reinstated")
}

// Reject moves a pending shop to the rejected terminal state with an optional reason.
func (h *ShopHandler) Reject(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	shopID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	input := &usecase.RejectShopInput{}
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rejection input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.workflowUC.RejectShop(c.Request().Context(), actor, shopID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Shop rejected")
}

// decideFunc is the shared shape of the reason-less workflow transitions.
type decideFunc func(ctx context.Context, actor entity.Actor, shopID uuid.UUID) (*entity.Shop, error)

func (h *ShopHandler) decide(c echo.Context, op decideFunc, message string) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	shopID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	shop, err := op(c.Request().Context(), actor, shopID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop, message)
}

func parseIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id must be a valid UUID")
	}

	return id, nil
}
