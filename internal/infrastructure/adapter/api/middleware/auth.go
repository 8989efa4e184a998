package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/usecase"
	"github.com/gin-gonic/gin"
)

const userKey = "current_user"

// RequireUser verifies the bearer token and loads the caller's account,
// creating it on first sight
func RequireUser(verifier gateway.IdentityVerifier, users usecase.UserUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abort(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Missing bearer token")
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Debug("Rejected bearer token", map[string]any{
				"error":      err.Error(),
				"request_id": c.GetString(requestIDKey),
			})
			abort(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Invalid or expired token")
			return
		}

		user, err := users.EnsureUser(c.Request.Context(), *identity)
		if err != nil {
			if errors.Is(err, errs.ErrEmailInUse) {
				abort(c, http.StatusConflict, err, "Email is registered to another account")
				return
			}
			if errors.Is(err, errs.ErrUnauthorized) || errors.Is(err, errs.ErrValidation) ||
				errors.Is(err, errs.ErrDuplicateUser) || errors.Is(err, errs.ErrUserNotFound) {
				abort(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Identity cannot be used")
				return
			}
			logger.Error("Failed to load account for identity", map[string]any{
				"subject": identity.Subject,
				"error":   err.Error(),
			})
			abort(c, http.StatusInternalServerError, errs.ErrInternalServer, "Internal server error")
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireAdmin rejects callers without the admin role. It must run after
// RequireUser.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			abort(c, http.StatusForbidden, errs.ErrForbidden, "Admin role required")
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated account, or nil on public routes
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*entity.User)
	return user
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
