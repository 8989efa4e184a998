package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware recovers from panics and returns a generic 500
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      fmt.Sprint(rec),
					"stack":      string(debug.Stack()),
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": c.GetString(requestIDKey),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    errs.CodeInternalServer,
					Message: "Internal server error",
				})
			}
		}()

		c.Next()
	}
}

func abort(c *gin.Context, status int, err error, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: message,
	})
}
