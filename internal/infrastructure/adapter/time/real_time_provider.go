package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the wall clock.
// All times are returned in UTC so stored expiries compare consistently.
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

func (p *RealTimeProvider) Until(t time.Time) core.Duration {
	return core.Duration(time.Until(t))
}

func (p *RealTimeProvider) Sleep(d core.Duration) {
	time.Sleep(d.Std())
}

// WithTimeout returns a context that will be canceled after the specified timeout
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

// FixedTimeProvider returns a frozen instant until advanced. Not safe for
// concurrent Advance.
type FixedTimeProvider struct {
	now time.Time
}

// NewFixedTimeProvider creates a provider frozen at now
func NewFixedTimeProvider(now time.Time) *FixedTimeProvider {
	return &FixedTimeProvider{now: now.UTC()}
}

func (p *FixedTimeProvider) Now() time.Time {
	return p.now
}

// Advance moves the frozen clock forward
func (p *FixedTimeProvider) Advance(d time.Duration) {
	p.now = p.now.Add(d)
}

func (p *FixedTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(p.now.Sub(t))
}

func (p *FixedTimeProvider) Until(t time.Time) core.Duration {
	return core.Duration(t.Sub(p.now))
}

// Sleep advances the frozen clock instead of blocking
func (p *FixedTimeProvider) Sleep(d core.Duration) {
	p.now = p.now.Add(d.Std())
}

func (p *FixedTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}
