package pricing

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablePrice(t *testing.T) {
	table := DefaultTable()

	testCases := []struct {
		name     string
		item     Item
		duration entity.LinkDuration
		want     int64
		known    bool
	}{
		{"voting 1 platform 1w", Item{Type: entity.LinkTypeVoting, PlatformCount: 1}, entity.Weeks(1), 4000, true},
		{"voting 1 platform 3d", Item{Type: entity.LinkTypeVoting, PlatformCount: 1}, entity.ThreeDays(), 2000, true},
		{"giveaway 3 platforms 2w", Item{Type: entity.LinkTypeGiveaway, PlatformCount: 3}, entity.Weeks(2), (4000 + 2*2500) * 2, true},
		{"custom 2 platforms 12w", Item{Type: entity.LinkTypeCustom, PlatformCount: 2}, entity.Weeks(12), (4000 + 2500) * 10, true},
		{"custom 2 platforms 3d", Item{Type: entity.LinkTypeCustom, PlatformCount: 2}, entity.ThreeDays(), 2000 + 2500, true},
		{"scratch 1 page 4w", Item{Type: entity.LinkTypeScratch, PageCount: 1}, entity.Weeks(4), 4000 * 4, true},
		{"scratch 5 pages 8w", Item{Type: entity.LinkTypeScratch, PageCount: 5}, entity.Weeks(8), (4000 + 4*1500) * 7, true},
		{"unknown tier falls back to 1", Item{Type: entity.LinkTypeVoting, PlatformCount: 1}, entity.Weeks(3), 4000, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			quote, err := table.Price(tc.item, tc.duration)

			require.NoError(t, err)
			assert.Equal(t, tc.want, quote.Price)
			assert.Equal(t, tc.known, quote.KnownTier)
			assert.Equal(t, tc.duration.String(), quote.DurationKey)
		})
	}
}

func TestThreeDayTierIsHalfOfOneWeek(t *testing.T) {
	table := DefaultTable()
	for _, lt := range []entity.LinkType{entity.LinkTypeVoting, entity.LinkTypeGiveaway, entity.LinkTypeCustom, entity.LinkTypeScratch} {
		item := Item{Type: lt, PlatformCount: 1, PageCount: 1}

		week, err := table.Price(item, entity.Weeks(1))
		require.NoError(t, err)
		short, err := table.Price(item, entity.ThreeDays())
		require.NoError(t, err)

		assert.Equal(t, week.Price/2, short.Price, lt)
	}
}

func TestPriceRejectsBadCardinality(t *testing.T) {
	table := DefaultTable()

	_, err := table.Price(Item{Type: entity.LinkTypeVoting, PlatformCount: 4}, entity.Weeks(1))
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = table.Price(Item{Type: entity.LinkTypeScratch, PageCount: 0}, entity.Weeks(1))
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = table.Price(Item{Type: entity.LinkType("poll"), PlatformCount: 1}, entity.Weeks(1))
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = table.Price(Item{Type: entity.LinkTypeVoting, PlatformCount: 1}, entity.Weeks(0))
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestExtensionPrice(t *testing.T) {
	table := DefaultTable()

	perWeek, err := table.PricePerWeek(Item{Type: entity.LinkTypeGiveaway, PlatformCount: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(6500), perWeek)

	price, err := table.ExtensionPrice(Item{Type: entity.LinkTypeGiveaway, PlatformCount: 2}, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(19500), price)

	price, err = table.ExtensionPrice(Item{Type: entity.LinkTypeScratch, PageCount: 3}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7000), price)

	_, err = table.ExtensionPrice(Item{Type: entity.LinkTypeScratch, PageCount: 3}, 0)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestTableValidate(t *testing.T) {
	assert.NoError(t, DefaultTable().Validate())

	bad := DefaultTable()
	bad.BasePrice = 0
	bad.Multipliers["2w"] = 0
	err := bad.Validate()
	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "pricing.basePrice")
	assert.Contains(t, verr.Fields, "pricing.multipliers.2w")
}

func TestComputeExpiry(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, now.Add(72*time.Hour), ComputeExpiry(entity.ThreeDays(), now))
	assert.Equal(t, now.AddDate(0, 0, 14), ComputeExpiry(entity.Weeks(2), now))
}

func TestExtendExpiry(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	week := 7 * 24 * time.Hour

	t.Run("Unexpired link stacks on remaining time", func(t *testing.T) {
		current := now.Add(2 * 24 * time.Hour)
		next := ExtendExpiry(current, 1, now)

		assert.Equal(t, current.Add(week), next)
		assert.True(t, next.After(current))
	})

	t.Run("Expired link restarts from now", func(t *testing.T) {
		current := now.Add(-30 * 24 * time.Hour)
		next := ExtendExpiry(current, 2, now)

		assert.Equal(t, now.Add(2*week), next)
	})

	t.Run("Expiring exactly now stacks", func(t *testing.T) {
		assert.Equal(t, now.Add(week), ExtendExpiry(now, 1, now))
	})

	t.Run("Never shortens", func(t *testing.T) {
		for _, offset := range []time.Duration{-48 * time.Hour, 0, time.Minute, 90 * 24 * time.Hour} {
			current := now.Add(offset)
			for weeks := 1; weeks <= 12; weeks++ {
				next := ExtendExpiry(current, weeks, now)
				assert.True(t, next.After(current))
				assert.True(t, next.After(now))
			}
		}
	})
}
