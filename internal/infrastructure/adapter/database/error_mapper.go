package database

import (
	"context"
	"errors"
	"fmt"

	domainErr "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// ErrorMapper maps database errors that escape the repositories (begin,
// commit, ping) to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a database error to a domain error. Errors that already
// carry a domain meaning pass through untouched.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}
	if isDomainError(err) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainErr.ErrNotFound
	case errors.Is(err, context.Canceled):
		return err
	case m.classifier.IsLockError(err):
		return fmt.Errorf("%w: %s: %s", domainErr.ErrTransientConflict, operation, err.Error())
	case m.classifier.IsDuplicateKeyError(err),
		m.classifier.IsForeignKeyError(err),
		m.classifier.IsCheckError(err):
		return fmt.Errorf("%w: %s", domainErr.ErrConstraintViolation, operation)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)
	case m.classifier.IsTransientError(err), m.classifier.IsConnectionError(err):
		return fmt.Errorf("%w: %s: %s", domainErr.ErrDatabaseConnection, operation, err.Error())
	default:
		return fmt.Errorf("%w: %s: %s", domainErr.ErrInternalServer, operation, err.Error())
	}
}

func isDomainError(err error) bool {
	var lf domainErr.LogFielder
	return errors.As(err, &lf) ||
		domainErr.IsNotFoundError(err) ||
		domainErr.IsConflictError(err) ||
		domainErr.IsValidationError(err) ||
		errors.Is(err, domainErr.ErrInsufficientBalance) ||
		errors.Is(err, domainErr.ErrForbidden) ||
		errors.Is(err, domainErr.ErrMessagingIdentityRequired) ||
		errors.Is(err, domainErr.ErrLinkExpired) ||
		errors.Is(err, domainErr.ErrDatabaseConnection) ||
		errors.Is(err, domainErr.ErrDuplicatePublicID)
}
