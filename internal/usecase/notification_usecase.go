package usecase

import (
	"context"
	"time"

	"mall/internal/domain/entity"

	"github.com/google/uuid"
)

// ListNotificationsInput filters a recipient's inbox listing.
type ListNotificationsInput struct {
	IncludeRead     bool    `query:"include_read"`
	IncludeArchived bool    `query:"include_archived"`
	Type            *string `query:"type"`
	Limit           int     `query:"limit"`
	Offset          int     `query:"offset"`
}

// ListNotificationsOutput is the inbox page plus the polling counters.
type ListNotificationsOutput struct {
	Items       []*entity.Notification `json:"items"`
	UnreadCount int64                  `json:"unread_count"`
	HasMore     bool                   `json:"has_more"`
}

// MarkAllReadOutput reports how many rows were flagged.
type MarkAllReadOutput struct {
	Count int64 `json:"count"`
}

// NotificationUsecase is the recipient-facing surface of the fan-out engine.
// Creation is not exposed here; only the workflow coordinator creates rows.
type NotificationUsecase interface {
	// ListNotifications pages the acting account's inbox, newest first,
	// together with the unread count for poll-based badges.
	ListNotifications(ctx context.Context, actor entity.Actor, input *ListNotificationsInput) (*ListNotificationsOutput, error)

	// UnreadCount returns the unread badge number alone.
	UnreadCount(ctx context.Context, actor entity.Actor) (int64, error)

	// MarkRead flags one owned notification as read; idempotent.
	MarkRead(ctx context.Context, actor entity.Actor, notificationID uuid.UUID) (*entity.Notification, error)

	// MarkAllRead flags every unread notification of the acting account.
	MarkAllRead(ctx context.Context, actor entity.Actor) (*MarkAllReadOutput, error)

	// Archive flags one owned notification as archived; idempotent.
	Archive(ctx context.Context, actor entity.Actor, notificationID uuid.UUID) (*entity.Notification, error)

	// PurgeExpired removes retention-expired rows. Invoked by the sweeper
	// delivery, never by request handlers.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
