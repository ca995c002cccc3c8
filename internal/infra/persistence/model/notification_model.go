package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// Each row is addressed to exactly one recipient; fan-out creates one row per
// recipient rather than sharing a row across an audience.
type NotificationModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Type           string     `gorm:"type:varchar(30);not null;index"`
	Title          string     `gorm:"type:varchar(120);not null"`
	Body           string     `gorm:"type:varchar(1000);not null"`
	RecipientID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	RecipientRole  string     `gorm:"type:varchar(20);not null"`
	RelatedKind    string     `gorm:"type:varchar(30)"`
	RelatedID      *uuid.UUID `gorm:"type:uuid"`
	Read           bool       `gorm:"not null;default:false"`
	Archived       bool       `gorm:"not null;default:false"`
	Priority       string     `gorm:"type:varchar(10);not null;default:'medium'"`
	ActionRequired bool       `gorm:"not null;default:false"`
	ActionType     string     `gorm:"type:varchar(30)"`
	ActionURL      string     `gorm:"type:text"`
	CreatedAt      time.Time  `gorm:"index"`
	ExpiresAt      *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
