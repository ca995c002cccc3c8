package handler

import (
	"log/slog"
	"net/http"

	"mall/internal/delivery/http/middleware"
	"mall/internal/delivery/http/response"
	"mall/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for the recipient inbox surface.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// List pages the acting account's inbox together with the unread count.
func (h *NotificationHandler) List(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var input usecase.ListNotificationsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification listing input")
	}

	output, err := h.uc.ListNotifications(c.Request().Context(), actor, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// UnreadCount returns the unread badge number for polling clients.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	count, err := h.uc.UnreadCount(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread_count": count}, "")
}

// MarkRead flags one owned notification as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	notificationID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	notification, err := h.uc.MarkRead(c.Request().Context(), actor, notificationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notification, "Notification marked read")
}

// MarkAllRead flags every unread notification of the acting account.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	output, err := h.uc.MarkAllRead(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "All notifications marked read")
}

// Archive flags one owned notification as archived.
func (h *NotificationHandler) Archive(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	notificationID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	notification, err := h.uc.Archive(c.Request().Context(), actor, notificationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notification, "Notification archived")
}
