package dto

import (
	"time"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/usecase"
)

// ProfileResponse is the authenticated user's account
type ProfileResponse struct {
	ID                   string    `json:"id"`
	Email                string    `json:"email"`
	Username             string    `json:"username"`
	Role                 string    `json:"role"`
	Balance              int64     `json:"balance"`
	MessagingID          *int64    `json:"messagingId,omitempty"`
	NotificationsEnabled bool      `json:"notificationsEnabled"`
	CreatedAt            time.Time `json:"createdAt"`
}

// NewProfileResponse maps a user entity
func NewProfileResponse(u *entity.User) ProfileResponse {
	return ProfileResponse{
		ID:                   u.ID,
		Email:                u.Email,
		Username:             u.Username,
		Role:                 string(u.Role),
		Balance:              u.Balance(),
		MessagingID:          u.MessagingID,
		NotificationsEnabled: u.NotificationsEnabled,
		CreatedAt:            u.CreatedAt,
	}
}

// NotificationsRequest toggles the notification preference
type NotificationsRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// ClaimRequest binds a messaging identity
type ClaimRequest struct {
	MessagingID int64 `json:"messagingId" binding:"required"`
}

// ClaimResponse reports the welcome bonus outcome
type ClaimResponse struct {
	BonusAwarded bool  `json:"bonusAwarded"`
	BonusAmount  int64 `json:"bonusAmount"`
	Balance      int64 `json:"balance"`
}

// NewClaimResponse maps a bonus claim result
func NewClaimResponse(r *usecase.BonusClaimResult) ClaimResponse {
	return ClaimResponse{
		BonusAwarded: r.BonusAwarded,
		BonusAmount:  r.BonusAmount,
		Balance:      r.Balance,
	}
}
