package pricing

import (
	"fmt"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
)

// Default price constants, in credits
const (
	DefaultBasePrice          int64 = 4000
	DefaultExtraPlatformPrice int64 = 2500
	DefaultExtraPagePrice     int64 = 1500
	FallbackMultiplier        int64 = 1
)

// DefaultMultipliers maps a duration key to its tier multiplier
func DefaultMultipliers() map[string]int64 {
	return map[string]int64{
		"3d":  1,
		"1w":  1,
		"2w":  2,
		"4w":  4,
		"8w":  7,
		"12w": 10,
	}
}

// Table holds the price constants. Its methods are pure.
type Table struct {
	BasePrice          int64
	ExtraPlatformPrice int64
	ExtraPagePrice     int64
	Multipliers        map[string]int64
}

// DefaultTable returns the stock price list
func DefaultTable() Table {
	return Table{
		BasePrice:          DefaultBasePrice,
		ExtraPlatformPrice: DefaultExtraPlatformPrice,
		ExtraPagePrice:     DefaultExtraPagePrice,
		Multipliers:        DefaultMultipliers(),
	}
}

// Validate rejects tables that could produce non-positive prices
func (t Table) Validate() error {
	verr := &errs.ValidationError{}
	if t.BasePrice <= 0 {
		verr.Add("pricing.basePrice", "must be positive")
	}
	if t.ExtraPlatformPrice < 0 {
		verr.Add("pricing.extraPlatformPrice", "must not be negative")
	}
	if t.ExtraPagePrice < 0 {
		verr.Add("pricing.extraPagePrice", "must not be negative")
	}
	for k, m := range t.Multipliers {
		if m <= 0 {
			verr.Add("pricing.multipliers."+k, "must be positive")
		}
	}
	return verr.OrNil()
}

// Item is the priced shape of a link
type Item struct {
	Type          entity.LinkType
	PlatformCount int
	PageCount     int
}

// ItemOf returns the priced shape of an existing link
func ItemOf(link *entity.Link) Item {
	return Item{Type: link.Type, PlatformCount: link.PlatformCount, PageCount: link.PageCount}
}

// Quote is a computed price
type Quote struct {
	Price       int64
	Multiplier  int64
	DurationKey string
	// KnownTier is false when the duration is not in the multiplier table
	// and the fallback multiplier was applied
	KnownTier bool
}

// Price computes the purchase price of item for duration d.
// Social links pay per platform, scratch links per page; the 3-day tier
// halves the base price.
func (t Table) Price(item Item, d entity.LinkDuration) (Quote, error) {
	if err := d.Validate(); err != nil {
		return Quote{}, err
	}
	base := t.BasePrice
	if d.IsThreeDay() {
		base /= 2
	}
	unit, err := t.unitPrice(item, base)
	if err != nil {
		return Quote{}, err
	}

	key := d.String()
	multiplier, known := t.Multipliers[key]
	if !known {
		multiplier = FallbackMultiplier
	}
	return Quote{
		Price:       unit * multiplier,
		Multiplier:  multiplier,
		DurationKey: key,
		KnownTier:   known,
	}, nil
}

// PricePerWeek is the undiscounted weekly rate used for extensions
func (t Table) PricePerWeek(item Item) (int64, error) {
	return t.unitPrice(item, t.BasePrice)
}

// ExtensionPrice is weeks times the weekly rate
func (t Table) ExtensionPrice(item Item, weeks int) (int64, error) {
	if weeks < 1 || weeks > entity.MaxLinkWeeks {
		return 0, errs.NewValidationError("weeks", fmt.Sprintf("must be between 1 and %d", entity.MaxLinkWeeks))
	}
	perWeek, err := t.PricePerWeek(item)
	if err != nil {
		return 0, err
	}
	return perWeek * int64(weeks), nil
}

func (t Table) unitPrice(item Item, base int64) (int64, error) {
	switch {
	case item.Type.IsSocial():
		if item.PlatformCount < entity.MinPlatforms || item.PlatformCount > entity.MaxPlatforms {
			return 0, errs.NewValidationError("platformCount",
				fmt.Sprintf("must be between %d and %d", entity.MinPlatforms, entity.MaxPlatforms))
		}
		return base + int64(item.PlatformCount-1)*t.ExtraPlatformPrice, nil
	case item.Type == entity.LinkTypeScratch:
		if item.PageCount < entity.MinScratchPages || item.PageCount > entity.MaxScratchPages {
			return 0, errs.NewValidationError("pageCount",
				fmt.Sprintf("must be between %d and %d", entity.MinScratchPages, entity.MaxScratchPages))
		}
		return base + int64(item.PageCount-1)*t.ExtraPagePrice, nil
	}
	return 0, errs.NewValidationError("type", fmt.Sprintf("unknown link type %q", item.Type))
}
