package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LinkRepository implements LinkRepository interface using GORM
type LinkRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewLinkRepository creates a new LinkRepository instance
func NewLinkRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *LinkRepository {
	return &LinkRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *LinkRepository) entityToModel(link *entity.Link) (model.Link, error) {
	raw, err := entity.EncodeContent(link.Content)
	if err != nil {
		return model.Link{}, errs.NewValidationError("content", err.Error())
	}
	return model.Link{
		ID:            link.ID,
		PublicID:      link.PublicID,
		OwnerID:       link.OwnerID,
		Name:          link.Name,
		Type:          string(link.Type),
		PlatformCount: link.PlatformCount,
		PageCount:     link.PageCount,
		Content:       datatypes.JSON(raw),
		ExpiresAt:     link.ExpiresAt.UTC(),
		CreatedAt:     link.CreatedAt.UTC(),
		UpdatedAt:     link.UpdatedAt.UTC(),
	}, nil
}

func (r *LinkRepository) modelToEntity(row *model.Link) (*entity.Link, error) {
	content, err := entity.DecodeContent(entity.LinkType(row.Type), row.Content)
	if err != nil {
		r.logger.Error("Stored link content is unreadable", map[string]any{
			"link_id": row.ID,
			"type":    row.Type,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: link %s content: %s", errs.ErrInternalServer, row.ID, err.Error())
	}
	return &entity.Link{
		ID:            row.ID,
		PublicID:      row.PublicID,
		OwnerID:       row.OwnerID,
		Name:          row.Name,
		Type:          entity.LinkType(row.Type),
		PlatformCount: row.PlatformCount,
		PageCount:     row.PageCount,
		Content:       content,
		ExpiresAt:     row.ExpiresAt,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

func (r *LinkRepository) handleDatabaseError(operation string, err error, linkID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrLinkNotFound
	}
	if r.errorClassifier.IsLockError(err) {
		return fmt.Errorf("%w: %s", errs.ErrTransientConflict, err.Error())
	}
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"link_id": linkID,
		"error":   err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create saves a new link. A public id collision is reported without
// raising a constraint error.
func (r *LinkRepository) Create(ctx context.Context, link *entity.Link) error {
	row, err := r.entityToModel(link)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row)
	if result.Error != nil {
		if r.errorClassifier.IsForeignKeyError(result.Error) {
			return errs.ErrUserNotFound
		}
		return r.handleDatabaseError("creating link", result.Error, link.ID)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Link identifier collision", map[string]any{
			"link_id":   link.ID,
			"public_id": link.PublicID,
		})
		return errs.ErrDuplicatePublicID
	}

	link.ID = row.ID
	r.logger.Info("Link created", map[string]any{
		"link_id":    link.ID,
		"owner_id":   link.OwnerID,
		"type":       link.Type,
		"expires_at": link.ExpiresAt,
	})
	return nil
}

func (r *LinkRepository) first(ctx context.Context, operation, logID string, query any, args ...any) (*entity.Link, error) {
	var row model.Link
	if err := r.db.WithContext(ctx).Where(query, args...).First(&row).Error; err != nil {
		return nil, r.handleDatabaseError(operation, err, logID)
	}
	return r.modelToEntity(&row)
}

// GetByID retrieves a link by ID
func (r *LinkRepository) GetByID(ctx context.Context, id string) (*entity.Link, error) {
	return r.first(ctx, "getting link", id, "id = ?", id)
}

// GetByPublicID retrieves a link by its public identifier
func (r *LinkRepository) GetByPublicID(ctx context.Context, publicID string) (*entity.Link, error) {
	return r.first(ctx, "getting public link", publicID, "public_id = ?", publicID)
}

// ListByOwner returns the owner's links, newest first
func (r *LinkRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Link, error) {
	var rows []model.Link
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing links", err, "")
	}

	links := make([]*entity.Link, 0, len(rows))
	for i := range rows {
		link, err := r.modelToEntity(&rows[i])
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, nil
}

// UpdateExpiry writes next only while the row still holds current
func (r *LinkRepository) UpdateExpiry(ctx context.Context, id, ownerID string, current, next time.Time) error {
	db := r.db.WithContext(ctx)
	result := db.Model(&model.Link{}).
		Where("id = ? AND owner_id = ? AND expires_at = ?", id, ownerID, current).
		Updates(map[string]any{
			"expires_at": next.UTC(),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("extending link", result.Error, id)
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := db.Model(&model.Link{}).Where("id = ? AND owner_id = ?", id, ownerID).Count(&count).Error; err != nil {
		return r.handleDatabaseError("checking link", err, id)
	}
	if count == 0 {
		return errs.ErrLinkNotFound
	}

	r.logger.Warn("Link expiry changed concurrently", map[string]any{
		"link_id": id,
	})
	return errs.ErrTransientConflict
}

// UpdateContent persists the edited name and content
func (r *LinkRepository) UpdateContent(ctx context.Context, link *entity.Link) error {
	raw, err := entity.EncodeContent(link.Content)
	if err != nil {
		return errs.NewValidationError("content", err.Error())
	}

	result := r.db.WithContext(ctx).Model(&model.Link{}).
		Where("id = ? AND owner_id = ?", link.ID, link.OwnerID).
		Updates(map[string]any{
			"name":       link.Name,
			"content":    datatypes.JSON(raw),
			"updated_at": link.UpdatedAt.UTC(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating link content", result.Error, link.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrLinkNotFound
	}
	return nil
}

// Delete removes an owned link
func (r *LinkRepository) Delete(ctx context.Context, id, ownerID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.Link{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting link", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrLinkNotFound
	}

	r.logger.Info("Link deleted", map[string]any{
		"link_id":  id,
		"owner_id": ownerID,
	})
	return nil
}

// Count returns the total number of links and those not yet expired at now
func (r *LinkRepository) Count(ctx context.Context, now time.Time) (int64, int64, error) {
	db := r.db.WithContext(ctx)

	var total int64
	if err := db.Model(&model.Link{}).Count(&total).Error; err != nil {
		return 0, 0, r.handleDatabaseError("counting links", err, "")
	}

	var active int64
	if err := db.Model(&model.Link{}).Where("expires_at >= ?", now.UTC()).Count(&active).Error; err != nil {
		return 0, 0, r.handleDatabaseError("counting active links", err, "")
	}
	return total, active, nil
}
