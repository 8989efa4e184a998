package entity

import (
	"fmt"
	"time"
)

// DefaultWelcomeBonus is credited once per messaging identity
const DefaultWelcomeBonus int64 = 2000

// WelcomeBonusClaim records that a messaging identity has received the bonus.
// It is keyed on MessagingID, not on the user, so re-binding the identity to
// another account never pays out twice.
type WelcomeBonusClaim struct {
	MessagingID int64
	UserID      string
	Amount      int64
	ClaimedAt   time.Time
}

// BonusReference is the synthetic ledger reference for a bonus credit
func BonusReference(messagingID int64) string {
	return fmt.Sprintf("bonus:%d", messagingID)
}
