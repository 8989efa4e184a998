package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Link represents the database model for paid links. Content holds the
// JSON document of the variant named by Type.
type Link struct {
	ID            string         `gorm:"primaryKey;size:36"`
	PublicID      string         `gorm:"uniqueIndex;not null;size:32"`
	OwnerID       string         `gorm:"not null;size:36;index:idx_links_owner_created,priority:1"`
	Name          string         `gorm:"not null;size:80"`
	Type          string         `gorm:"not null;size:16"`
	PlatformCount int            `gorm:"not null;default:0"`
	PageCount     int            `gorm:"not null;default:0"`
	Content       datatypes.JSON `gorm:"not null"`
	ExpiresAt     time.Time      `gorm:"not null;index"`
	CreatedAt     time.Time      `gorm:"not null;index:idx_links_owner_created,priority:2"`
	UpdatedAt     time.Time      `gorm:"not null"`

	Owner User `gorm:"foreignKey:OwnerID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Link
func (Link) TableName() string {
	return "links"
}

func (l *Link) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
