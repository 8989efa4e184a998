package handler

import (
	"errors"
	"net/http"

	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// HTTPStatus maps a domain error to its response status
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	case errs.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrMessagingIdentityRequired):
		return http.StatusPreconditionFailed
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errs.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrLinkExpired):
		return http.StatusGone
	case errors.Is(err, errs.ErrTransientConflict), errors.Is(err, errs.ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	case errs.IsConflictError(err):
		return http.StatusConflict
	case errors.Is(err, errs.ErrRateLimited):
		return http.StatusTooManyRequests
	case errs.IsUpstreamError(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// publicMessages lists errors whose text is safe to return as is
var publicMessages = []error{
	errs.ErrInsufficientBalance,
	errs.ErrInvalidAmount,
	errs.ErrInvalidUserID,
	errs.ErrInvalidReference,
	errs.ErrValidation,
	errs.ErrMessagingIdentityRequired,
	errs.ErrMessagingIdentityBound,
	errs.ErrUnauthorized,
	errs.ErrForbidden,
	errs.ErrUserNotFound,
	errs.ErrLinkNotFound,
	errs.ErrTransactionNotFound,
	errs.ErrLinkExpired,
	errs.ErrTransactionTerminal,
	errs.ErrDuplicateTransaction,
	errs.ErrDuplicateUser,
	errs.ErrRateLimited,
	errs.ErrUpstreamGateway,
}

// NewErrorResponse builds the response body for err. Causes of server-side
// failures never reach the caller.
func NewErrorResponse(err error) dto.ErrorResponse {
	resp := dto.ErrorResponse{Code: errs.ErrorCode(err), Message: "Internal server error"}

	for _, known := range publicMessages {
		if errors.Is(err, known) {
			resp.Message = known.Error()
			break
		}
	}
	if errors.Is(err, errs.ErrTransientConflict) || errors.Is(err, errs.ErrDatabaseConnection) {
		resp.Message = "Service busy, please retry"
	}

	var verr *errs.ValidationError
	if errors.As(err, &verr) {
		resp.Fields = verr.Fields
	}
	var ierr *errs.InsufficientBalanceError
	if errors.As(err, &ierr) {
		resp.Required = &ierr.Required
		resp.Available = &ierr.Available
	}
	return resp
}

// respondError logs err and writes its mapped response
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status := HTTPStatus(err)

	fields := errs.LogFields(err)
	fields["operation"] = operation
	fields["status"] = status
	if user := middleware.CurrentUser(c); user != nil {
		fields["user_id"] = user.ID
	}

	if status >= http.StatusInternalServerError {
		fields["error"] = err.Error()
		logger.Error("Request failed", fields)
	} else {
		logger.Debug("Request rejected", fields)
	}

	_ = c.Error(err)
	c.JSON(status, NewErrorResponse(err))
}

// badRequest rejects a body or query that could not be parsed
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    errs.ErrorCode(errs.ErrInvalidRequest),
		Message: message,
	})
}

// requireUser returns the authenticated caller; routes using it sit behind
// middleware.RequireUser
func requireUser(c *gin.Context) (string, bool) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse(errs.ErrUnauthorized))
		return "", false
	}
	return user.ID, true
}
