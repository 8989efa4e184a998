package link

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/linkledger/internal/domain/usecase/pricing"
)

// maxPublicIDAttempts bounds retries after a public identifier collision
const maxPublicIDAttempts = 3

// LinkUseCase implements the link lifecycle
type LinkUseCase struct {
	uow          persistence.UnitOfWork
	ledger       usecase.LedgerUseCase
	prices       pricing.Table
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.MetricsRecorder
}

// NewLinkUseCase creates a new link use case instance
func NewLinkUseCase(
	uow persistence.UnitOfWork,
	ledger usecase.LedgerUseCase,
	prices pricing.Table,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.MetricsRecorder,
) usecase.LinkUseCase {
	return &LinkUseCase{
		uow:          uow,
		ledger:       ledger,
		prices:       prices,
		ids:          ids,
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
	}
}

// Create validates, prices and persists a new link. The debit, the link row
// and the spend record commit together.
func (u *LinkUseCase) Create(ctx context.Context, ownerID string, req usecase.CreateLinkRequest) (*usecase.LinkPurchaseResult, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, errs.ErrInvalidUserID
	}

	duration, err := entity.ParseLinkDuration(req.Duration)
	if err != nil {
		return nil, err
	}

	now := u.timeProvider.Now()
	link, err := entity.NewLink(u.ids.NewID(), "", ownerID, req.Name, req.Content, req.PlatformCount,
		pricing.ComputeExpiry(duration, now), now)
	if err != nil {
		return nil, err
	}

	quote, err := u.prices.Price(pricing.ItemOf(link), duration)
	if err != nil {
		return nil, err
	}
	if !quote.KnownTier {
		u.logger.Warn("Duration not in multiplier table, fallback multiplier applied", map[string]any{
			"duration":   quote.DurationKey,
			"multiplier": quote.Multiplier,
			"price":      quote.Price,
			"ownerId":    ownerID,
		})
		u.metrics.UnknownDurationPriced(quote.DurationKey)
	}

	owner, err := u.uow.Users(ctx).GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !owner.HasMessagingIdentity() {
		return nil, errs.ErrMessagingIdentityRequired
	}

	var balance int64
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		var err error
		balance, err = u.ledger.Debit(txCtx, ownerID, quote.Price, "link:create")
		if err != nil {
			return err
		}
		if err := u.insertLink(txCtx, link); err != nil {
			return err
		}
		return u.recordSpend(txCtx, link, quote.Price, "link creation", map[string]any{
			"linkId":   link.ID,
			"duration": quote.DurationKey,
			"type":     string(link.Type),
		})
	})
	if err != nil {
		u.logger.Warn("Link creation failed", mergeFields(errs.LogFields(err), map[string]any{
			"ownerId": ownerID,
			"type":    link.Type,
			"price":   quote.Price,
		}))
		return nil, err
	}

	u.metrics.LinkCreated(string(link.Type), quote.DurationKey)
	u.logger.Info("Link created", map[string]any{
		"linkId":    link.ID,
		"publicId":  link.PublicID,
		"ownerId":   ownerID,
		"type":      link.Type,
		"price":     quote.Price,
		"expiresAt": link.ExpiresAt,
	})

	return &usecase.LinkPurchaseResult{
		Link:    u.view(link),
		Price:   quote.Price,
		Balance: balance,
	}, nil
}

// Extend adds whole weeks to an owned link. Concurrent extensions are
// serialised by the expiry guard in UpdateExpiry; the loser is retried by the
// unit of work against the fresh expiry.
func (u *LinkUseCase) Extend(ctx context.Context, linkID, ownerID string, weeks int) (*usecase.LinkPurchaseResult, error) {
	if weeks < 1 || weeks > entity.MaxLinkWeeks {
		return nil, errs.NewValidationError("weeks", fmt.Sprintf("must be between 1 and %d", entity.MaxLinkWeeks))
	}

	var result *usecase.LinkPurchaseResult
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		link, err := u.ownedLink(txCtx, linkID, ownerID)
		if err != nil {
			return err
		}

		price, err := u.prices.ExtensionPrice(pricing.ItemOf(link), weeks)
		if err != nil {
			return err
		}

		balance, err := u.ledger.Debit(txCtx, ownerID, price, "link:extend")
		if err != nil {
			return err
		}

		previous := link.ExpiresAt
		now := u.timeProvider.Now()
		next := pricing.ExtendExpiry(previous, weeks, now)
		if err := u.uow.Links(txCtx).UpdateExpiry(txCtx, link.ID, ownerID, previous, next); err != nil {
			return err
		}
		link.ExpiresAt = next
		link.UpdatedAt = now

		if err := u.recordSpend(txCtx, link, price, "link extension", map[string]any{
			"linkId":         link.ID,
			"weeks":          weeks,
			"previousExpiry": previous,
		}); err != nil {
			return err
		}

		result = &usecase.LinkPurchaseResult{
			Link:           u.view(link),
			Price:          price,
			Balance:        balance,
			PreviousExpiry: &previous,
		}
		return nil
	})
	if err != nil {
		u.logger.Warn("Link extension failed", mergeFields(errs.LogFields(err), map[string]any{
			"linkId":  linkID,
			"ownerId": ownerID,
			"weeks":   weeks,
		}))
		return nil, err
	}

	u.metrics.LinkExtended(string(result.Link.Link.Type), weeks)
	u.logger.Info("Link extended", map[string]any{
		"linkId":         linkID,
		"ownerId":        ownerID,
		"weeks":          weeks,
		"price":          result.Price,
		"previousExpiry": *result.PreviousExpiry,
		"expiresAt":      result.Link.Link.ExpiresAt,
	})
	return result, nil
}

// Delete removes an owned link. Paid time is forfeited.
func (u *LinkUseCase) Delete(ctx context.Context, linkID, ownerID string) error {
	if err := u.uow.Links(ctx).Delete(ctx, linkID, ownerID); err != nil {
		return err
	}
	u.logger.Info("Link deleted", map[string]any{
		"linkId":  linkID,
		"ownerId": ownerID,
	})
	return nil
}

// Get returns an owned link
func (u *LinkUseCase) Get(ctx context.Context, linkID, ownerID string) (*usecase.LinkView, error) {
	link, err := u.ownedLink(ctx, linkID, ownerID)
	if err != nil {
		return nil, err
	}
	return u.view(link), nil
}

// List returns the owner's links
func (u *LinkUseCase) List(ctx context.Context, ownerID string) ([]*usecase.LinkView, error) {
	links, err := u.uow.Links(ctx).ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	views := make([]*usecase.LinkView, 0, len(links))
	for _, l := range links {
		views = append(views, u.view(l))
	}
	return views, nil
}

// GetPublic resolves a public identifier; expired links are not served
func (u *LinkUseCase) GetPublic(ctx context.Context, publicID string) (*usecase.LinkView, error) {
	link, err := u.uow.Links(ctx).GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	view := u.view(link)
	if view.Expired {
		return nil, errs.ErrLinkExpired
	}
	return view, nil
}

// UpdateContent edits an owned link's name and content
func (u *LinkUseCase) UpdateContent(ctx context.Context, linkID, ownerID, name string, content entity.LinkContent) (*usecase.LinkView, error) {
	link, err := u.ownedLink(ctx, linkID, ownerID)
	if err != nil {
		return nil, err
	}

	if err := link.ReplaceContent(content, u.timeProvider.Now()); err != nil {
		return nil, err
	}
	if name = strings.TrimSpace(name); name != "" {
		link.Name = name
	}
	if err := link.Validate(); err != nil {
		return nil, err
	}

	if err := u.uow.Links(ctx).UpdateContent(ctx, link); err != nil {
		return nil, err
	}
	u.logger.Info("Link content updated", map[string]any{
		"linkId":  linkID,
		"ownerId": ownerID,
	})
	return u.view(link), nil
}

func (u *LinkUseCase) ownedLink(ctx context.Context, linkID, ownerID string) (*entity.Link, error) {
	link, err := u.uow.Links(ctx).GetByID(ctx, linkID)
	if err != nil {
		return nil, err
	}
	// Another owner's link is reported as missing
	if link.OwnerID != ownerID {
		return nil, errs.ErrLinkNotFound
	}
	return link, nil
}

func (u *LinkUseCase) insertLink(ctx context.Context, link *entity.Link) error {
	var err error
	for attempt := 1; attempt <= maxPublicIDAttempts; attempt++ {
		link.PublicID = u.ids.NewPublicID()
		err = u.uow.Links(ctx).Create(ctx, link)
		if !errors.Is(err, errs.ErrDuplicatePublicID) {
			return err
		}
		u.logger.Debug("Public identifier collision", map[string]any{
			"publicId": link.PublicID,
			"attempt":  attempt,
		})
	}
	return err
}

func (u *LinkUseCase) recordSpend(ctx context.Context, link *entity.Link, price int64, reason string, md map[string]any) error {
	spend, err := entity.NewTransaction("spend:"+u.ids.NewID(), link.OwnerID, entity.KindSpend, price, reason,
		u.timeProvider, entity.WithStatus(entity.StatusSuccess), entity.WithMetadata(md))
	if err != nil {
		return err
	}
	return u.uow.Transactions(ctx).Create(ctx, spend)
}

func (u *LinkUseCase) view(link *entity.Link) *usecase.LinkView {
	now := u.timeProvider.Now()
	return &usecase.LinkView{
		Link:      link,
		Expired:   link.IsExpired(now),
		Remaining: link.Remaining(now),
	}
}

func mergeFields(base, extra map[string]any) map[string]any {
	for k, v := range extra {
		base[k] = v
	}
	return base
}
