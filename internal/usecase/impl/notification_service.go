package impl

import (
	"context"
	"log/slog"
	"time"

	"mall/config"
	deliverycontext "mall/internal/delivery/context"
	"mall/internal/domain/entity"
	domainerrors "mall/internal/domain/errors"
	"mall/internal/domain/repository"
	"mall/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultInboxPageSize = 20
	maxInboxPageSize     = 100

	defaultRetentionWindow = 30 * 24 * time.Hour
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	retention        time.Duration
	logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(notificationRepo repository.NotificationRepository, cfg *config.Config, logger *slog.Logger) usecase.NotificationUsecase {
	retention := defaultRetentionWindow
	if cfg != nil && cfg.Notification != nil && cfg.Notification.RetentionWindow > 0 {
		retention = cfg.Notification.RetentionWindow
	}

	return &notificationService{
		notificationRepo: notificationRepo,
		retention:        retention,
		logger:           logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListNotifications pages the acting account's inbox together with the unread
// count. It fetches one row beyond the page to compute HasMore without a
// second count query.
func (srv *notificationService) ListNotifications(ctx context.Context, actor entity.Actor, input *usecase.ListNotificationsInput) (*usecase.ListNotificationsOutput, error) {
	filter := repository.NotificationFilter{Limit: defaultInboxPageSize}

	if input != nil {
		filter.IncludeRead = input.IncludeRead
		filter.IncludeArchived = input.IncludeArchived
		if input.Limit > 0 {
			filter.Limit = input.Limit
		}
		if input.Offset > 0 {
			filter.Offset = input.Offset
		}
		if input.Type != nil {
			notificationType := entity.NotificationType(*input.Type)
			if !notificationType.IsValid() {
				return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown notification type filter")
			}
			filter.Type = &notificationType
		}
	}
	if filter.Limit > maxInboxPageSize {
		filter.Limit = maxInboxPageSize
	}

	pageSize := filter.Limit
	filter.Limit = pageSize + 1

	items, err := srv.notificationRepo.FindByRecipient(ctx, actor.AccountID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	hasMore := len(items) > pageSize
	if hasMore {
		items = items[:pageSize]
	}

	unread, err := srv.notificationRepo.CountUnread(ctx, actor.AccountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count unread notifications")
	}

	return &usecase.ListNotificationsOutput{
		Items:       items,
		UnreadCount: unread,
		HasMore:     hasMore,
	}, nil
}

// UnreadCount returns the unread badge number for poll-based clients.
func (srv *notificationService) UnreadCount(ctx context.Context, actor entity.Actor) (int64, error) {
	count, err := srv.notificationRepo.CountUnread(ctx, actor.AccountID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead flags one owned notification as read. The ownership check is folded
// into the lookup; a foreign id surfaces as not-found.
func (srv *notificationService) MarkRead(ctx context.Context, actor entity.Actor, notificationID uuid.UUID) (*entity.Notification, error) {
	row, err := srv.notificationRepo.MarkRead(ctx, notificationID, actor.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound.WrapMessage("no such notification for this recipient")
		}

		return nil, errors.Wrap(err, "failed to mark notification read")
	}

	return row, nil
}

// MarkAllRead flags every unread notification of the acting account.
func (srv *notificationService) MarkAllRead(ctx context.Context, actor entity.Actor) (*usecase.MarkAllReadOutput, error) {
	count, err := srv.notificationRepo.MarkAllRead(ctx, actor.AccountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark all notifications read")
	}

	srv.log(ctx).Debug("Marked all notifications read", slog.Any("accountID", actor.AccountID), slog.Int64("count", count))

	return &usecase.MarkAllReadOutput{Count: count}, nil
}

// Archive flags one owned notification as archived; idempotent.
func (srv *notificationService) Archive(ctx context.Context, actor entity.Actor, notificationID uuid.UUID) (*entity.Notification, error) {
	row, err := srv.notificationRepo.Archive(ctx, notificationID, actor.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound.WrapMessage("no such notification for this recipient")
		}

		return nil, errors.Wrap(err, "failed to archive notification")
	}

	return row, nil
}

// PurgeExpired removes retention-expired rows on behalf of the sweeper.
func (srv *notificationService) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	count, err := srv.notificationRepo.PurgeExpired(ctx, now, srv.retention)
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge expired notifications")
	}

	if count > 0 {
		srv.log(ctx).Info("Purged expired notifications", slog.Int64("count", count))
	}

	return count, nil
}
