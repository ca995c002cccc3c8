// Package entity contains the core business objects of the project.
package entity

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// NotificationType is the closed set of domain events a notification can carry.
type NotificationType string

const (
	NotificationShopRegistered NotificationType = "shop_registered"
	NotificationShopApproved   NotificationType = "shop_approved"
	NotificationShopRejected   NotificationType = "shop_rejected"
	NotificationShopSuspended  NotificationType = "shop_suspended"
	NotificationShopReinstated NotificationType = "shop_reinstated"
)

// IsValid checks if the NotificationType is a valid value.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationShopRegistered, NotificationShopApproved, NotificationShopRejected,
		NotificationShopSuspended, NotificationShopReinstated:
		return true
	default:
		return false
	}
}

// String returns the string representation of the NotificationType.
func (t NotificationType) String() string {
	return string(t)
}

// NotificationPriority orders notifications in client inboxes.
type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityMedium NotificationPriority = "medium"
	PriorityHigh   NotificationPriority = "high"
	PriorityUrgent NotificationPriority = "urgent"
)

// IsValid checks if the NotificationPriority is a valid value.
func (p NotificationPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// ActionType is the closed set of follow-up actions a notification can request.
type ActionType string

const (
	ActionReviewShop ActionType = "review_shop"
	ActionViewShop   ActionType = "view_shop"
)

// RelatedEntity is a weak (type, id) pointer to the entity a notification is
// about. It is not an ownership edge; the target may be gone.
type RelatedEntity struct {
	Kind string    `json:"kind"`
	ID   uuid.UUID `json:"id"`
}

// Notification is a single per-recipient inbox row. It is immutable after
// creation except for the Read and Archived flags, which only move false->true.
type Notification struct {
	ID             uuid.UUID            // The Global Unique Identifier (GUID) for the notification.
	Type           NotificationType     // The domain event this notification carries.
	Title          string               // Short headline, bounded length.
	Body           string               // Message text, bounded length.
	RecipientID    uuid.UUID            // The account this row belongs to.
	RecipientRole  Role                 // Denormalized copy of the recipient's role at creation time.
	Related        *RelatedEntity       // Optional weak pointer to the subject entity.
	Read           bool                 // One-way flag, never reset.
	Archived       bool                 // One-way flag; archived rows are excluded from default listings.
	Priority       NotificationPriority // Inbox ordering hint.
	ActionRequired bool                 // Whether the recipient is expected to act.
	ActionType     ActionType           // What kind of action, when ActionRequired.
	ActionURL      string               // Opaque client-side target, not validated.
	CreatedAt      time.Time            // Timestamp of creation, used for newest-first ordering.
	ExpiresAt      *time.Time           // Optional expiry after which the row is purge-eligible.
}

// Maximum lengths enforced when building notifications from templates.
const (
	NotificationTitleMaxLen = 120
	NotificationBodyMaxLen  = 1000
)

// NotificationTemplate is the per-event payload the workflow hands to the
// fan-out engine. One template produces one independent row per recipient.
type NotificationTemplate struct {
	Type           NotificationType
	Title          string
	Body           string
	Related        *RelatedEntity
	Priority       NotificationPriority
	ActionRequired bool
	ActionType     ActionType
	ActionURL      string
	ExpiresAt      *time.Time
}

// Build materializes a template into a row addressed to one recipient,
// truncating over-long text instead of failing the fan-out.
func (t NotificationTemplate) Build(recipientID uuid.UUID, recipientRole Role) *Notification {
	return &Notification{
		ID:             uuid.New(),
		Type:           t.Type,
		Title:          truncate(t.Title, NotificationTitleMaxLen),
		Body:           truncate(t.Body, NotificationBodyMaxLen),
		RecipientID:    recipientID,
		RecipientRole:  recipientRole,
		Related:        t.Related,
		Priority:       t.Priority,
		ActionRequired: t.ActionRequired,
		ActionType:     t.ActionType,
		ActionURL:      t.ActionURL,
		CreatedAt:      time.Now(),
		ExpiresAt:      t.ExpiresAt,
	}
}

// truncate bounds s to max bytes without splitting a multibyte rune; the row
// must stay valid UTF-8 for the store.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut]
}
