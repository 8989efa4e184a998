package pricing

import (
	"time"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
)

// ComputeExpiry returns the expiry of a link bought at now
func ComputeExpiry(d entity.LinkDuration, now time.Time) time.Time {
	return now.Add(d.Offset())
}

// ExtendExpiry stacks weeks on top of an unexpired link; an expired link
// restarts from now. The result is never earlier than current.
func ExtendExpiry(current time.Time, weeks int, now time.Time) time.Time {
	base := current
	if current.Before(now) {
		base = now
	}
	return base.Add(entity.Weeks(weeks).Offset())
}
