package entity

import (
	"fmt"
	"math"

	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
)

const (
	// MinPurchaseCredits is the smallest credit pack a user can buy
	MinPurchaseCredits int64 = 1_000
	// MaxPurchaseCredits is the largest credit pack a user can buy
	MaxPurchaseCredits int64 = 1_000_000
	// MinorUnitsPerCredit converts credits to the gateway's minor currency unit
	MinorUnitsPerCredit int64 = 100
)

// ValidateCreditAmount checks that a ledger movement is strictly positive
func ValidateCreditAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: must be greater than zero, got %d", errs.ErrInvalidAmount, amount)
	}
	return nil
}

// ValidatePurchaseAmount checks the purchase bounds
func ValidatePurchaseAmount(credits int64) error {
	if credits < MinPurchaseCredits || credits > MaxPurchaseCredits {
		return fmt.Errorf("%w: purchase must be between %d and %d credits, got %d",
			errs.ErrInvalidAmount, MinPurchaseCredits, MaxPurchaseCredits, credits)
	}
	return nil
}

// CreditsToMinorUnits converts a credit amount to gateway minor units
func CreditsToMinorUnits(credits int64) (int64, error) {
	if err := ValidateCreditAmount(credits); err != nil {
		return 0, err
	}
	if credits > math.MaxInt64/MinorUnitsPerCredit {
		return 0, fmt.Errorf("%w: %d credits overflows minor units", errs.ErrInvalidAmount, credits)
	}
	return credits * MinorUnitsPerCredit, nil
}

// MinorUnitsToCredits converts gateway minor units back to whole credits,
// truncating any fractional credit
func MinorUnitsToCredits(minor int64) int64 {
	return minor / MinorUnitsPerCredit
}
