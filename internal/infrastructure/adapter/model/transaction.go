package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Transaction represents the database model for ledger transactions.
// Reference is the idempotency key: one row per gateway reference or
// synthetic grant/bonus/spend reference.
type Transaction struct {
	ID          string         `gorm:"primaryKey;size:36"`
	Reference   string         `gorm:"uniqueIndex;not null;size:255"`
	UserID      string         `gorm:"not null;size:36;index:idx_transactions_user_created,priority:1"`
	Kind        string         `gorm:"not null;size:16;index"`
	Status      string         `gorm:"not null;size:16;index"`
	Amount      int64          `gorm:"not null"`
	Reason      string         `gorm:"size:255"`
	Metadata    datatypes.JSON `gorm:"not null"`
	CreatedAt   time.Time      `gorm:"not null;index:idx_transactions_user_created,priority:2"`
	ProcessedAt *time.Time

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
