package model

import (
	"time"
)

// WelcomeBonusClaim is keyed on the messaging identity so the unique
// primary key is the double-claim guard
type WelcomeBonusClaim struct {
	MessagingID int64     `gorm:"primaryKey;autoIncrement:false"`
	UserID      string    `gorm:"not null;size:36;index"`
	Amount      int64     `gorm:"not null"`
	ClaimedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for WelcomeBonusClaim
func (WelcomeBonusClaim) TableName() string {
	return "welcome_bonus_claims"
}
