package model

import (
	"time"

	"github.com/google/uuid"
)

// ShopModel is the GORM-specific struct for the 'shops' table.
// Status transitions are performed through conditional updates only, never
// through a plain Save, so the column carries no default beyond 'pending'.
// The partial unique index on owner_id is the concurrency-safe backstop for
// the one-active-shop-per-vendor rule; the pre-count in the repository only
// gives the friendly error.
type ShopModel struct {
	ID             uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID        uuid.UUID         `gorm:"type:uuid;not null;index;uniqueIndex:uniq_shops_owner_active,where:status = 'pending' OR status = 'approved'"`
	Name           string            `gorm:"type:varchar(100);not null"`
	Category       string            `gorm:"type:varchar(30);not null"`
	Description    string            `gorm:"type:text"`
	ContactPhone   string            `gorm:"type:varchar(30)"`
	ContactEmail   string            `gorm:"type:varchar(255)"`
	ContactWebsite string            `gorm:"type:varchar(255)"`
	Hours          map[string]string `gorm:"type:jsonb;serializer:json"`
	Floor          string            `gorm:"type:varchar(10)"`
	Unit           string            `gorm:"type:varchar(10)"`
	Status         string            `gorm:"type:varchar(20);not null;default:'pending';index"`
	RejectReason   string            `gorm:"type:text"`
	RatingAverage  float64           `gorm:"type:decimal(3,2);not null;default:0"`
	RatingCount    int               `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}
