package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
)

// MaxLinkWeeks bounds a single purchase or extension
const MaxLinkWeeks = 52

const (
	day  = 24 * time.Hour
	week = 7 * day
)

// LinkDuration is a paid link period: either the short 3-day tier or a
// whole number of weeks.
type LinkDuration struct {
	weeks    int
	threeDay bool
}

// ThreeDays returns the short half-price tier
func ThreeDays() LinkDuration {
	return LinkDuration{threeDay: true}
}

// Weeks returns a whole-week duration
func Weeks(n int) LinkDuration {
	return LinkDuration{weeks: n}
}

// ParseLinkDuration accepts "3d", "0.5", "half" for the short tier and
// "N", "Nw", "Nweek(s)" for whole weeks.
func ParseLinkDuration(raw string) (LinkDuration, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "":
		return LinkDuration{}, errs.NewValidationError("duration", "is required")
	case "3d", "3day", "3days", "0.5", "half":
		return ThreeDays(), nil
	}

	for _, suffix := range []string{"weeks", "week", "w"} {
		if strings.HasSuffix(s, suffix) {
			s = strings.TrimSuffix(s, suffix)
			break
		}
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return LinkDuration{}, errs.NewValidationError("duration", fmt.Sprintf("unrecognized duration %q", raw))
	}
	d := Weeks(n)
	if err := d.Validate(); err != nil {
		return LinkDuration{}, err
	}
	return d, nil
}

// Validate checks the duration is the short tier or 1..MaxLinkWeeks weeks
func (d LinkDuration) Validate() error {
	if d.threeDay {
		return nil
	}
	if d.weeks < 1 || d.weeks > MaxLinkWeeks {
		return errs.NewValidationError("duration", fmt.Sprintf("must be 3d or between 1 and %d weeks", MaxLinkWeeks))
	}
	return nil
}

func (d LinkDuration) IsThreeDay() bool { return d.threeDay }

// WholeWeeks returns the number of weeks, zero for the short tier
func (d LinkDuration) WholeWeeks() int {
	if d.threeDay {
		return 0
	}
	return d.weeks
}

// Offset is the wall-clock length of the duration
func (d LinkDuration) Offset() time.Duration {
	if d.threeDay {
		return 3 * day
	}
	return time.Duration(d.weeks) * week
}

func (d LinkDuration) String() string {
	if d.threeDay {
		return "3d"
	}
	return fmt.Sprintf("%dw", d.weeks)
}
