package postgres

import (
	"context"
	"time"

	"mall/internal/domain/entity"
	"mall/internal/domain/repository"
	"mall/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateEach inserts fan-out rows one at a time. A failing row is recorded
// against its recipient and the loop continues, so earlier recipients keep
// their notifications whatever happens to later ones.
func (repo *notificationRepository) CreateEach(ctx context.Context, rows []*entity.Notification) (*repository.FanOutResult, error) {
	result := &repository.FanOutResult{
		Created: make([]*entity.Notification, 0, len(rows)),
		Failed:  make(map[uuid.UUID]error),
	}

	for _, row := range rows {
		notificationM := fromNotificationDomain(row)

		if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
			result.Failed[row.RecipientID] = errors.Wrap(err, "failed to create notification")

			continue
		}

		row.ID = notificationM.ID
		row.CreatedAt = notificationM.CreatedAt
		result.Created = append(result.Created, row)
	}

	return result, nil
}

// FindByRecipient lists a recipient's notifications newest first.
func (repo *notificationRepository) FindByRecipient(ctx context.Context, recipientID uuid.UUID, filter repository.NotificationFilter) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC")

	if !filter.IncludeRead {
		query = query.Where("read = ?", false)
	}
	if !filter.IncludeArchived {
		query = query.Where("archived = ?", false)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by recipient")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// CountUnread returns the number of unread, unarchived rows for a recipient.
func (repo *notificationRepository) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND read = ? AND archived = ?", recipientID, false, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead sets the read flag iff the row belongs to recipientID. Marking an
// already-read row is a no-op that still returns the row, keeping the
// operation idempotent for retrying clients.
func (repo *notificationRepository) MarkRead(ctx context.Context, id, recipientID uuid.UUID) (*entity.Notification, error) {
	return repo.setFlag(ctx, id, recipientID, "read")
}

// MarkAllRead flags every unread row of a recipient, returning the count.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND read = ?", recipientID, false).
		Update("read", true)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark all notifications read")
	}

	return result.RowsAffected, nil
}

// Archive sets the archived flag with the same ownership-folded lookup and
// idempotency as MarkRead.
func (repo *notificationRepository) Archive(ctx context.Context, id, recipientID uuid.UUID) (*entity.Notification, error) {
	return repo.setFlag(ctx, id, recipientID, "archived")
}

// PurgeExpired deletes rows that are read+archived and older than the
// retention window, or whose explicit expiry has passed.
func (repo *notificationRepository) PurgeExpired(ctx context.Context, now time.Time, retention time.Duration) (int64, error) {
	cutoff := now.Add(-retention)

	result := repo.db.WithContext(ctx).
		Where("(read = ? AND archived = ? AND created_at < ?) OR (expires_at IS NOT NULL AND expires_at < ?)",
			true, true, cutoff, now).
		Delete(&model.NotificationModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to purge expired notifications")
	}

	return result.RowsAffected, nil
}

// setFlag flips a one-way boolean column and re-reads the row. The flags only
// move false to true, so a zero row count from the UPDATE is not conclusive;
// the follow-up SELECT distinguishes an already-flagged row from a missing or
// foreign one.
func (repo *notificationRepository) setFlag(ctx context.Context, id, recipientID uuid.UUID, column string) (*entity.Notification, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Update(column, true)

	if result.Error != nil {
		return nil, errors.Wrapf(result.Error, "failed to set notification %s flag", column)
	}

	var notificationM model.NotificationModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to reload notification")
	}

	return toNotificationDomain(&notificationM), nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	var related *entity.RelatedEntity
	if data.RelatedID != nil {
		related = &entity.RelatedEntity{
			Kind: data.RelatedKind,
			ID:   *data.RelatedID,
		}
	}

	return &entity.Notification{
		ID:             data.ID,
		Type:           entity.NotificationType(data.Type),
		Title:          data.Title,
		Body:           data.Body,
		RecipientID:    data.RecipientID,
		RecipientRole:  entity.Role(data.RecipientRole),
		Related:        related,
		Read:           data.Read,
		Archived:       data.Archived,
		Priority:       entity.NotificationPriority(data.Priority),
		ActionRequired: data.ActionRequired,
		ActionType:     entity.ActionType(data.ActionType),
		ActionURL:      data.ActionURL,
		CreatedAt:      data.CreatedAt,
		ExpiresAt:      data.ExpiresAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	notificationM := &model.NotificationModel{
		ID:             data.ID,
		Type:           data.Type.String(),
		Title:          data.Title,
		Body:           data.Body,
		RecipientID:    data.RecipientID,
		RecipientRole:  data.RecipientRole.String(),
		Read:           data.Read,
		Archived:       data.Archived,
		Priority:       string(data.Priority),
		ActionRequired: data.ActionRequired,
		ActionType:     string(data.ActionType),
		ActionURL:      data.ActionURL,
		ExpiresAt:      data.ExpiresAt,
	}

	if data.Related != nil {
		notificationM.RelatedKind = data.Related.Kind
		relatedID := data.Related.ID
		notificationM.RelatedID = &relatedID
	}

	return notificationM
}
