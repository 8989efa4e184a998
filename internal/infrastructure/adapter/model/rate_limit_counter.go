package model

// RateLimitCounter is a fixed-window counter shared by every API instance.
// Window bounds are unix milliseconds so comparisons behave the same on
// PostgreSQL and SQLite.
type RateLimitCounter struct {
	BucketKey     string `gorm:"primaryKey;size:255"`
	Hits          int64  `gorm:"not null"`
	WindowStartMs int64  `gorm:"not null"`
	ExpiresAtMs   int64  `gorm:"not null;index"`
}

// TableName specifies the table name for RateLimitCounter
func (RateLimitCounter) TableName() string {
	return "rate_limit_counters"
}
