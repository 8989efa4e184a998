package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
)

// LinkType discriminates link content variants
type LinkType string

const (
	LinkTypeVoting   LinkType = "voting"
	LinkTypeGiveaway LinkType = "giveaway"
	LinkTypeCustom   LinkType = "custom"
	LinkTypeScratch  LinkType = "scratch"
)

const (
	MinPlatforms    = 1
	MaxPlatforms    = 3
	MinScratchPages = 1
	MaxScratchPages = 5
	MaxLinkNameLen  = 80
)

// ParseLinkType validates a link type tag
func ParseLinkType(raw string) (LinkType, error) {
	t := LinkType(strings.ToLower(strings.TrimSpace(raw)))
	switch t {
	case LinkTypeVoting, LinkTypeGiveaway, LinkTypeCustom, LinkTypeScratch:
		return t, nil
	}
	return "", errs.NewValidationError("type", fmt.Sprintf("unknown link type %q", raw))
}

// IsSocial reports whether the link is priced by platform count
func (t LinkType) IsSocial() bool {
	return t == LinkTypeVoting || t == LinkTypeGiveaway || t == LinkTypeCustom
}

// Link is a paid, time-limited hosted page. Expiry is derived from ExpiresAt
// at read time, never stored as a flag.
type Link struct {
	ID            string
	PublicID      string
	OwnerID       string
	Name          string
	Type          LinkType
	PlatformCount int
	PageCount     int
	Content       LinkContent
	ExpiresAt     time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewLink assembles a link and checks its cardinality against its type.
// PageCount for scratch links is taken from the content pages.
func NewLink(id, publicID, ownerID, name string, content LinkContent, platformCount int, expiresAt, now time.Time) (*Link, error) {
	if content == nil {
		return nil, errs.NewValidationError("content", "is required")
	}

	link := &Link{
		ID:        id,
		PublicID:  publicID,
		OwnerID:   ownerID,
		Name:      strings.TrimSpace(name),
		Type:      content.Type(),
		Content:   content,
		ExpiresAt: expiresAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if link.Type.IsSocial() {
		link.PlatformCount = platformCount
	} else if sc, ok := content.(*ScratchContent); ok {
		link.PageCount = len(sc.Pages)
	}

	if err := link.Validate(); err != nil {
		return nil, err
	}
	return link, nil
}

// Validate checks the link's own fields and its content variant
func (l *Link) Validate() error {
	verr := &errs.ValidationError{}
	if l.Name == "" {
		verr.Add("name", "is required")
	} else if len(l.Name) > MaxLinkNameLen {
		verr.Add("name", fmt.Sprintf("must be at most %d characters", MaxLinkNameLen))
	}

	if l.Type.IsSocial() {
		if l.PlatformCount < MinPlatforms || l.PlatformCount > MaxPlatforms {
			verr.Add("platformCount", fmt.Sprintf("must be between %d and %d", MinPlatforms, MaxPlatforms))
		}
	} else if l.PageCount < MinScratchPages || l.PageCount > MaxScratchPages {
		verr.Add("pageCount", fmt.Sprintf("must be between %d and %d", MinScratchPages, MaxScratchPages))
	}

	if l.Content == nil {
		verr.Add("content", "is required")
	} else {
		if l.Content.Type() != l.Type {
			verr.Add("content", fmt.Sprintf("content for %s does not match link type %s", l.Content.Type(), l.Type))
		}
		mergeValidation(verr, l.Content.Validate())
	}
	return verr.OrNil()
}

// IsExpired reports whether the paid period has ended at now
func (l *Link) IsExpired(now time.Time) bool {
	return l.ExpiresAt.Before(now)
}

// Remaining is the time left before expiry, zero once expired
func (l *Link) Remaining(now time.Time) time.Duration {
	if l.IsExpired(now) {
		return 0
	}
	return l.ExpiresAt.Sub(now)
}

// ReplaceContent swaps in edited content of the same variant
func (l *Link) ReplaceContent(content LinkContent, now time.Time) error {
	if content == nil {
		return errs.NewValidationError("content", "is required")
	}
	if content.Type() != l.Type {
		return errs.NewValidationError("type", "link type cannot be changed")
	}
	if err := content.Validate(); err != nil {
		return err
	}
	if sc, ok := content.(*ScratchContent); ok && len(sc.Pages) != l.PageCount {
		return errs.NewValidationError("pages", fmt.Sprintf("page count is fixed at %d for this link", l.PageCount))
	}
	l.Content = content
	l.UpdatedAt = now
	return nil
}

func mergeValidation(into *errs.ValidationError, err error) {
	if err == nil {
		return
	}
	if verr, ok := err.(*errs.ValidationError); ok {
		for k, v := range verr.Fields {
			into.Add(k, v)
		}
		return
	}
	into.Add("content", err.Error())
}
