package time

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
)

func TestRealTimeProviderReturnsUTC(t *testing.T) {
	p := NewRealTimeProvider()
	assert.Equal(t, time.UTC, p.Now().Location())
}

func TestFixedTimeProvider(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	p := NewFixedTimeProvider(start)

	assert.Equal(t, start, p.Now())

	p.Advance(time.Hour)
	assert.Equal(t, start.Add(time.Hour), p.Now())
	assert.Equal(t, core.Hour, p.Since(start))
	assert.Equal(t, -core.Hour, p.Until(start))

	p.Sleep(core.Day)
	assert.Equal(t, start.Add(25*time.Hour), p.Now())

	ctx, cancel := p.WithTimeout(context.Background(), core.Second)
	defer cancel()
	_, ok := ctx.Deadline()
	assert.True(t, ok)
}
