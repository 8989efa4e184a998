package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID                   string    `gorm:"primaryKey;size:36"`
	Email                string    `gorm:"uniqueIndex;not null;size:255"`
	Username             string    `gorm:"not null;size:100"`
	Role                 string    `gorm:"not null;size:16;default:user"`
	Balance              int64     `gorm:"not null;default:0;check:chk_users_balance_non_negative,balance >= 0"` // credits
	MessagingID          *int64    `gorm:"uniqueIndex"`
	NotificationsEnabled bool      `gorm:"not null;default:false"`
	CreatedAt            time.Time `gorm:"not null"`
	UpdatedAt            time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
