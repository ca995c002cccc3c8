// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"mall/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification does not exist or
// does not belong to the acting recipient. The two cases are folded together.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationFilter narrows recipient inbox listings.
type NotificationFilter struct {
	IncludeRead     bool
	IncludeArchived bool
	Type            *entity.NotificationType
	Limit           int
	Offset          int
}

// FanOutResult reports the per-recipient outcome of a batch create. Rows
// committed before a failure stay committed; fan-out is at-least-once per
// recipient, never all-or-nothing across recipients.
type FanOutResult struct {
	Created []*entity.Notification
	Failed  map[uuid.UUID]error
}

// NotificationRepository owns per-recipient notification rows.
type NotificationRepository interface {
	// CreateEach inserts one row at a time, collecting per-row failures
	// instead of rolling back earlier successes.
	CreateEach(ctx context.Context, rows []*entity.Notification) (*FanOutResult, error)

	// FindByRecipient lists a recipient's notifications newest first.
	FindByRecipient(ctx context.Context, recipientID uuid.UUID, filter NotificationFilter) ([]*entity.Notification, error)

	// CountUnread returns the number of unread, unarchived rows for a recipient.
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)

	// MarkRead sets the read flag iff the row belongs to recipientID.
	// Idempotent: marking an already-read row succeeds without side effect.
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) (*entity.Notification, error)

	// MarkAllRead flags every unread row of a recipient, returning the count.
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error)

	// Archive sets the archived flag with the same ownership-folded lookup and
	// idempotency as MarkRead.
	Archive(ctx context.Context, id, recipientID uuid.UUID) (*entity.Notification, error)

	// PurgeExpired deletes rows that are read+archived and older than the
	// retention window, or whose explicit expiry has passed. Returns the
	// number of rows removed.
	PurgeExpired(ctx context.Context, now time.Time, retention time.Duration) (int64, error)
}
